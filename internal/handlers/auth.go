package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
  var req struct {
    Name      string  `json:"name"`
    Email     string  `json:"email"`
    Password  string  `json:"password"`
    Company   string  `json:"company"`
    Phone     string  `json:"phone"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  user := types.User{
    Name:     req.Name,
    Email:    req.Email,
    Password: req.Password,
    Company:  req.Company,
    Phone:    req.Phone,
  }
  created, token, err := ah.authService.RegisterUser(c.Request.Context(), &user)
  if err != nil {
    RespondError(c, err)
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  c.JSON(http.StatusCreated, gin.H{"user": created, "token": token, "expires_in": expiresIn})
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var req struct {
    Email     string  `json:"email"`
    Password  string  `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  user, token, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondError(c, err)
    return
  }
  expiresIn := int(ah.authService.GetAccessTTL().Seconds())
  c.JSON(http.StatusOK, gin.H{"user": user, "token": token, "expires_in": expiresIn})
}
