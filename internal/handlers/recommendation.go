package handlers

import (
  "context"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type RecommendationHandler struct {
  recommendationService services.RecommendationService
}

func NewRecommendationHandler(recommendationService services.RecommendationService) *RecommendationHandler {
  return &RecommendationHandler{recommendationService: recommendationService}
}

func (rh *RecommendationHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  recommendations, err := rh.recommendationService.List(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}

func (rh *RecommendationHandler) Generate(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  recommendations, err := rh.recommendationService.Generate(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"recommendations": recommendations})
}

func (rh *RecommendationHandler) MarkClicked(c *gin.Context) {
  rh.mark(c, rh.recommendationService.MarkClicked)
}

func (rh *RecommendationHandler) MarkImplemented(c *gin.Context) {
  rh.mark(c, rh.recommendationService.MarkImplemented)
}

func (rh *RecommendationHandler) mark(c *gin.Context, fn func(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error)) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  recommendationID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  recommendation, err := fn(c.Request.Context(), userID, recommendationID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"recommendation": recommendation})
}
