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

type ContactInput struct {
  Name    string
  Email   string
  Phone   string
  Company string
  Message string
}

type ContactService interface {
  Submit(ctx context.Context, input ContactInput) (*types.ContactSubmission, error)
  List(ctx context.Context) ([]*types.ContactSubmission, error)
  Get(ctx context.Context, id uuid.UUID) (*types.ContactSubmission, error)
}

type contactService struct {
  db          *gorm.DB
  log         *logger.Logger
  contactRepo repos.ContactRepo
}

func NewContactService(db *gorm.DB, log *logger.Logger, contactRepo repos.ContactRepo) ContactService {
  serviceLog := log.With("service", "ContactService")
  return &contactService{db: db, log: serviceLog, contactRepo: contactRepo}
}

func (cs *contactService) Submit(ctx context.Context, input ContactInput) (*types.ContactSubmission, error) {
  if input.Name == "" || input.Email == "" || input.Phone == "" || input.Message == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_contact", fmt.Errorf("name, email, phone and message are required"))
  }
  contact := &types.ContactSubmission{
    ID:      uuid.New(),
    Name:    input.Name,
    Email:   input.Email,
    Phone:   input.Phone,
    Company: input.Company,
    Message: input.Message,
  }
  created, err := cs.contactRepo.Create(ctx, nil, contact)
  if err != nil {
    return nil, fmt.Errorf("Failed to store contact submission: %w", err)
  }
  return created, nil
}

func (cs *contactService) List(ctx context.Context) ([]*types.ContactSubmission, error) {
  submissions, err := cs.contactRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list contact submissions: %w", err)
  }
  return submissions, nil
}

func (cs *contactService) Get(ctx context.Context, id uuid.UUID) (*types.ContactSubmission, error) {
  submission, err := cs.contactRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch contact submission: %w", err)
  }
  if submission == nil {
    return nil, apierr.New(http.StatusNotFound, "contact_not_found", fmt.Errorf("contact submission not found"))
  }
  return submission, nil
}
