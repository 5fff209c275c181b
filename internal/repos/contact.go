package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type ContactRepo interface {
  Create(ctx context.Context, tx *gorm.DB, contact *types.ContactSubmission) (*types.ContactSubmission, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.ContactSubmission, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ContactSubmission, error)
}

type contactRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewContactRepo(db *gorm.DB, baseLog *logger.Logger) ContactRepo {
  repoLog := baseLog.With("repo", "ContactRepo")
  return &contactRepo{db: db, log: repoLog}
}

func (cr *contactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.ContactSubmission) (*types.ContactSubmission, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if err := transaction.WithContext(ctx).Create(contact).Error; err != nil {
    return nil, err
  }
  return contact, nil
}

func (cr *contactRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ContactSubmission, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var results []*types.ContactSubmission
  if err := transaction.WithContext(ctx).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *contactRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ContactSubmission, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var result types.ContactSubmission
  if err := transaction.WithContext(ctx).
    Where("id = ?", id).
    Limit(1).
    Find(&result).Error; err != nil {
    return nil, err
  }
  if result.ID == uuid.Nil {
    return nil, nil
  }
  return &result, nil
}
