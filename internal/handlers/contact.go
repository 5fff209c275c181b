package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type ContactHandler struct {
  contactService services.ContactService
}

func NewContactHandler(contactService services.ContactService) *ContactHandler {
  return &ContactHandler{contactService: contactService}
}

func (ch *ContactHandler) Submit(c *gin.Context) {
  var req struct {
    Name      string  `json:"name" binding:"required"`
    Email     string  `json:"email" binding:"required,email"`
    Phone     string  `json:"phone" binding:"required"`
    Company   string  `json:"company"`
    Message   string  `json:"message" binding:"required"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  contact, err := ch.contactService.Submit(c.Request.Context(), services.ContactInput{
    Name:    req.Name,
    Email:   req.Email,
    Phone:   req.Phone,
    Company: req.Company,
    Message: req.Message,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"success": true, "id": contact.ID})
}

func (ch *ContactHandler) List(c *gin.Context) {
  if _, ok := CallerID(c); !ok {
    return
  }
  submissions, err := ch.contactService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (ch *ContactHandler) Get(c *gin.Context) {
  if _, ok := CallerID(c); !ok {
    return
  }
  id, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  submission, err := ch.contactService.Get(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"submission": submission})
}
