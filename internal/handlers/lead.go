package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type LeadHandler struct {
  leadService services.LeadService
}

func NewLeadHandler(leadService services.LeadService) *LeadHandler {
  return &LeadHandler{leadService: leadService}
}

type leadRequest struct {
  ToolID  *uuid.UUID  `json:"toolId"`
  Name    string      `json:"name"`
  Phone   string      `json:"phone"`
  Email   string      `json:"email"`
  Source  string      `json:"source"`
  Status  string      `json:"status"`
  Notes   string      `json:"notes"`
}

func (lr *leadRequest) toInput() services.LeadInput {
  return services.LeadInput{
    ToolID: lr.ToolID,
    Name:   lr.Name,
    Phone:  lr.Phone,
    Email:  lr.Email,
    Source: lr.Source,
    Status: lr.Status,
    Notes:  lr.Notes,
  }
}

func (lh *LeadHandler) Create(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req leadRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  lead, err := lh.leadService.Create(c.Request.Context(), userID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

func (lh *LeadHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  leads, err := lh.leadService.List(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"leads": leads})
}

func (lh *LeadHandler) Update(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  leadID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  var req leadRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  lead, err := lh.leadService.Update(c.Request.Context(), userID, leadID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"lead": lead})
}
