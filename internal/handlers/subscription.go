package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type SubscriptionHandler struct {
  subscriptionService services.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService services.SubscriptionService) *SubscriptionHandler {
  return &SubscriptionHandler{subscriptionService: subscriptionService}
}

func (sh *SubscriptionHandler) Create(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req struct {
    PlanID        uuid.UUID `json:"planId" binding:"required"`
    BillingPeriod string    `json:"billingPeriod"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  subscription, err := sh.subscriptionService.Create(c.Request.Context(), userID, services.SubscriptionInput{
    PlanID:        req.PlanID,
    BillingPeriod: req.BillingPeriod,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"subscription": subscription})
}

func (sh *SubscriptionHandler) Cancel(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  subscriptionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  subscription, err := sh.subscriptionService.Cancel(c.Request.Context(), userID, subscriptionID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"subscription": subscription})
}

func (sh *SubscriptionHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  subscriptions, err := sh.subscriptionService.List(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"subscriptions": subscriptions})
}
