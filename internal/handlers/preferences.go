package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type PreferencesHandler struct {
  preferencesService services.PreferencesService
}

func NewPreferencesHandler(preferencesService services.PreferencesService) *PreferencesHandler {
  return &PreferencesHandler{preferencesService: preferencesService}
}

func (ph *PreferencesHandler) Get(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  prefs, err := ph.preferencesService.Get(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (ph *PreferencesHandler) Save(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req struct {
    Industry     string    `json:"industry"`
    BusinessSize string    `json:"businessSize"`
    Interests    []string  `json:"interests"`
    Languages    []string  `json:"languages"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  prefs, err := ph.preferencesService.Save(c.Request.Context(), userID, services.PreferencesInput{
    Industry:     req.Industry,
    BusinessSize: req.BusinessSize,
    Interests:    req.Interests,
    Languages:    req.Languages,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
