package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type UserHandler struct {
  userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetProfile(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  user, err := uh.userService.GetProfile(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}

func (uh *UserHandler) UpdateProfile(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req struct {
    Name      *string `json:"name"`
    Company   *string `json:"company"`
    Phone     *string `json:"phone"`
    Password  *string `json:"password"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  update := services.ProfileUpdate{
    Name:     req.Name,
    Company:  req.Company,
    Phone:    req.Phone,
    Password: req.Password,
  }
  user, err := uh.userService.UpdateProfile(c.Request.Context(), userID, update)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"user": user})
}
