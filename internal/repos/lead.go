package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type LeadRepo interface {
  Create(ctx context.Context, tx *gorm.DB, lead *types.Lead) (*types.Lead, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lead, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Lead, error)
  Update(ctx context.Context, tx *gorm.DB, lead *types.Lead) (*types.Lead, error)
}

type leadRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLeadRepo(db *gorm.DB, baseLog *logger.Logger) LeadRepo {
  repoLog := baseLog.With("repo", "LeadRepo")
  return &leadRepo{db: db, log: repoLog}
}

func (lr *leadRepo) Create(ctx context.Context, tx *gorm.DB, lead *types.Lead) (*types.Lead, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  if err := transaction.WithContext(ctx).Create(lead).Error; err != nil {
    return nil, err
  }
  return lead, nil
}

func (lr *leadRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Lead, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  var result types.Lead
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

func (lr *leadRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Lead, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  var results []*types.Lead
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (lr *leadRepo) Update(ctx context.Context, tx *gorm.DB, lead *types.Lead) (*types.Lead, error) {
  transaction := tx
  if transaction == nil {
    transaction = lr.db
  }
  if lead == nil || lead.ID == uuid.Nil {
    return nil, nil
  }
  if err := transaction.WithContext(ctx).Save(lead).Error; err != nil {
    return nil, err
  }
  return lead, nil
}
