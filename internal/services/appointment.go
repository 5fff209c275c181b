package services

import (
  "context"
  "fmt"
  "net/http"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type AppointmentInput struct {
  ToolID          *uuid.UUID
  CustomerName    string
  CustomerPhone   string
  Service         string
  AppointmentDate time.Time
  Status          string
  Notes           string
}

type AppointmentService interface {
  Create(ctx context.Context, userID uuid.UUID, input AppointmentInput) (*types.Appointment, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error)
  Update(ctx context.Context, userID, appointmentID uuid.UUID, input AppointmentInput) (*types.Appointment, error)
}

type appointmentService struct {
  db              *gorm.DB
  log             *logger.Logger
  appointmentRepo repos.AppointmentRepo
}

func NewAppointmentService(db *gorm.DB, log *logger.Logger, appointmentRepo repos.AppointmentRepo) AppointmentService {
  serviceLog := log.With("service", "AppointmentService")
  return &appointmentService{db: db, log: serviceLog, appointmentRepo: appointmentRepo}
}

func (as *appointmentService) Create(ctx context.Context, userID uuid.UUID, input AppointmentInput) (*types.Appointment, error) {
  if input.CustomerName == "" || input.CustomerPhone == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_appointment", fmt.Errorf("customer name and phone are required"))
  }
  if input.AppointmentDate.IsZero() {
    return nil, apierr.New(http.StatusBadRequest, "invalid_appointment", fmt.Errorf("an appointment date is required"))
  }
  status := input.Status
  if status == "" {
    status = types.AppointmentStatusScheduled
  }
  appointment := &types.Appointment{
    ID:              uuid.New(),
    UserID:          userID,
    ToolID:          input.ToolID,
    CustomerName:    input.CustomerName,
    CustomerPhone:   input.CustomerPhone,
    Service:         input.Service,
    AppointmentDate: input.AppointmentDate,
    Status:          status,
    Notes:           input.Notes,
  }
  created, err := as.appointmentRepo.Create(ctx, nil, appointment)
  if err != nil {
    return nil, fmt.Errorf("Failed to create appointment: %w", err)
  }
  return created, nil
}

func (as *appointmentService) List(ctx context.Context, userID uuid.UUID) ([]*types.Appointment, error) {
  appointments, err := as.appointmentRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list appointments: %w", err)
  }
  return appointments, nil
}

func (as *appointmentService) Update(ctx context.Context, userID, appointmentID uuid.UUID, input AppointmentInput) (*types.Appointment, error) {
  appointment, err := as.appointmentRepo.GetByID(ctx, nil, appointmentID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch appointment: %w", err)
  }
  if appointment == nil {
    return nil, apierr.New(http.StatusNotFound, "appointment_not_found", fmt.Errorf("appointment not found"))
  }
  if appointment.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("appointment belongs to another user"))
  }
  if input.CustomerName != "" {
    appointment.CustomerName = input.CustomerName
  }
  if input.CustomerPhone != "" {
    appointment.CustomerPhone = input.CustomerPhone
  }
  if input.Service != "" {
    appointment.Service = input.Service
  }
  if !input.AppointmentDate.IsZero() {
    appointment.AppointmentDate = input.AppointmentDate
  }
  if input.Status != "" {
    appointment.Status = input.Status
  }
  if input.Notes != "" {
    appointment.Notes = input.Notes
  }
  updated, err := as.appointmentRepo.Update(ctx, nil, appointment)
  if err != nil {
    return nil, fmt.Errorf("Failed to update appointment: %w", err)
  }
  return updated, nil
}
