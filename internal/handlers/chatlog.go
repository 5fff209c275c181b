package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type ChatLogHandler struct {
  chatLogService services.ChatLogService
}

func NewChatLogHandler(chatLogService services.ChatLogService) *ChatLogHandler {
  return &ChatLogHandler{chatLogService: chatLogService}
}

func (ch *ChatLogHandler) Append(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req struct {
    ToolID    uuid.UUID `json:"toolId" binding:"required"`
    SessionID string    `json:"sessionId"`
    Role      string    `json:"role"`
    Message   string    `json:"message"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  entry, err := ch.chatLogService.Append(c.Request.Context(), userID, services.ChatLogInput{
    ToolID:    req.ToolID,
    SessionID: req.SessionID,
    Role:      req.Role,
    Message:   req.Message,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"chatLog": entry})
}

func (ch *ChatLogHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  logs, err := ch.chatLogService.ListByUser(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"chatLogs": logs})
}
