package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type ActivityHandler struct {
  activityService services.ActivityService
}

func NewActivityHandler(activityService services.ActivityService) *ActivityHandler {
  return &ActivityHandler{activityService: activityService}
}

func (ah *ActivityHandler) Record(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req struct {
    ActivityType string          `json:"activityType" binding:"required"`
    EntityType   string          `json:"entityType"`
    EntityID     *uuid.UUID      `json:"entityId"`
    Metadata     datatypes.JSON  `json:"metadata"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  activity, err := ah.activityService.Record(c.Request.Context(), userID, services.ActivityInput{
    ActivityType: req.ActivityType,
    EntityType:   req.EntityType,
    EntityID:     req.EntityID,
    Metadata:     req.Metadata,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"activity": activity})
}
