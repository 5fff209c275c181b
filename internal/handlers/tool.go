package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type ToolHandler struct {
  toolService services.ToolService
}

func NewToolHandler(toolService services.ToolService) *ToolHandler {
  return &ToolHandler{toolService: toolService}
}

type toolRequest struct {
  Name          string          `json:"name"`
  ToolType      string          `json:"toolType"`
  Configuration datatypes.JSON  `json:"configuration"`
  Active        *bool           `json:"active"`
}

func (tr *toolRequest) toInput() services.ToolInput {
  return services.ToolInput{
    Name:          tr.Name,
    ToolType:      types.ToolType(tr.ToolType),
    Configuration: tr.Configuration,
    Active:        tr.Active,
  }
}

func (th *ToolHandler) Create(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req toolRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  tool, err := th.toolService.Create(c.Request.Context(), userID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"tool": tool})
}

func (th *ToolHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  tools, err := th.toolService.List(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"tools": tools})
}

func (th *ToolHandler) Get(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  tool, err := th.toolService.Get(c.Request.Context(), userID, toolID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"tool": tool})
}

func (th *ToolHandler) Update(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  var req toolRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  tool, err := th.toolService.Update(c.Request.Context(), userID, toolID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"tool": tool})
}

func (th *ToolHandler) Delete(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  if err := th.toolService.Delete(c.Request.Context(), userID, toolID); err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"success": true})
}

func (th *ToolHandler) ListChatLogs(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  toolID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  logs, err := th.toolService.ListChatLogs(c.Request.Context(), userID, toolID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"chatLogs": logs})
}
