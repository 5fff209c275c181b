package handlers

import (
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vyaparai/vyaparai-backend/internal/services"
)

type AppointmentHandler struct {
  appointmentService services.AppointmentService
}

func NewAppointmentHandler(appointmentService services.AppointmentService) *AppointmentHandler {
  return &AppointmentHandler{appointmentService: appointmentService}
}

type appointmentRequest struct {
  ToolID          *uuid.UUID  `json:"toolId"`
  CustomerName    string      `json:"customerName"`
  CustomerPhone   string      `json:"customerPhone"`
  Service         string      `json:"service"`
  AppointmentDate time.Time   `json:"appointmentDate"`
  Status          string      `json:"status"`
  Notes           string      `json:"notes"`
}

func (ar *appointmentRequest) toInput() services.AppointmentInput {
  return services.AppointmentInput{
    ToolID:          ar.ToolID,
    CustomerName:    ar.CustomerName,
    CustomerPhone:   ar.CustomerPhone,
    Service:         ar.Service,
    AppointmentDate: ar.AppointmentDate,
    Status:          ar.Status,
    Notes:           ar.Notes,
  }
}

func (ah *AppointmentHandler) Create(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  var req appointmentRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  appointment, err := ah.appointmentService.Create(c.Request.Context(), userID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"appointment": appointment})
}

func (ah *AppointmentHandler) List(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  appointments, err := ah.appointmentService.List(c.Request.Context(), userID)
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

func (ah *AppointmentHandler) Update(c *gin.Context) {
  userID, ok := CallerID(c)
  if !ok {
    return
  }
  appointmentID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondBadRequest(c, err)
    return
  }
  var req appointmentRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondBadRequest(c, err)
    return
  }
  appointment, err := ah.appointmentService.Update(c.Request.Context(), userID, appointmentID, req.toInput())
  if err != nil {
    RespondError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{"appointment": appointment})
}
