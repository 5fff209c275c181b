package services

import (
  "context"
  "fmt"
  "net/http"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type LeadInput struct {
  ToolID  *uuid.UUID
  Name    string
  Phone   string
  Email   string
  Source  string
  Status  string
  Notes   string
}

type LeadService interface {
  Create(ctx context.Context, userID uuid.UUID, input LeadInput) (*types.Lead, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.Lead, error)
  Update(ctx context.Context, userID, leadID uuid.UUID, input LeadInput) (*types.Lead, error)
}

type leadService struct {
  db        *gorm.DB
  log       *logger.Logger
  leadRepo  repos.LeadRepo
}

func NewLeadService(db *gorm.DB, log *logger.Logger, leadRepo repos.LeadRepo) LeadService {
  serviceLog := log.With("service", "LeadService")
  return &leadService{db: db, log: serviceLog, leadRepo: leadRepo}
}

func (ls *leadService) Create(ctx context.Context, userID uuid.UUID, input LeadInput) (*types.Lead, error) {
  if input.Name == "" || input.Phone == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_lead", fmt.Errorf("lead name and phone are required"))
  }
  status := input.Status
  if status == "" {
    status = types.LeadStatusNew
  }
  lead := &types.Lead{
    ID:      uuid.New(),
    UserID:  userID,
    ToolID:  input.ToolID,
    Name:    input.Name,
    Phone:   input.Phone,
    Email:   input.Email,
    Source:  input.Source,
    Status:  status,
    Notes:   input.Notes,
  }
  created, err := ls.leadRepo.Create(ctx, nil, lead)
  if err != nil {
    return nil, fmt.Errorf("Failed to create lead: %w", err)
  }
  return created, nil
}

func (ls *leadService) List(ctx context.Context, userID uuid.UUID) ([]*types.Lead, error) {
  leads, err := ls.leadRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list leads: %w", err)
  }
  return leads, nil
}

func (ls *leadService) Update(ctx context.Context, userID, leadID uuid.UUID, input LeadInput) (*types.Lead, error) {
  lead, err := ls.leadRepo.GetByID(ctx, nil, leadID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch lead: %w", err)
  }
  if lead == nil {
    return nil, apierr.New(http.StatusNotFound, "lead_not_found", fmt.Errorf("lead not found"))
  }
  if lead.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("lead belongs to another user"))
  }
  if input.Name != "" {
    lead.Name = input.Name
  }
  if input.Phone != "" {
    lead.Phone = input.Phone
  }
  if input.Email != "" {
    lead.Email = input.Email
  }
  if input.Source != "" {
    lead.Source = input.Source
  }
  if input.Status != "" {
    lead.Status = input.Status
  }
  if input.Notes != "" {
    lead.Notes = input.Notes
  }
  updated, err := ls.leadRepo.Update(ctx, nil, lead)
  if err != nil {
    return nil, fmt.Errorf("Failed to update lead: %w", err)
  }
  return updated, nil
}
