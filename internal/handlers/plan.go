package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type PlanHandler struct {
  planService services.PlanService
}

func NewPlanHandler(planService services.PlanService) *PlanHandler {
  return &PlanHandler{planService: planService}
}

func (ph *PlanHandler) List(c *gin.Context) {
  plans, err := ph.planService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"plans": plans})
}
