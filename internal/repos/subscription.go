package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type SubscriptionRepo interface {
  Create(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Subscription, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Subscription, error)
  Update(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error)
}

type subscriptionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSubscriptionRepo(db *gorm.DB, baseLog *logger.Logger) SubscriptionRepo {
  repoLog := baseLog.With("repo", "SubscriptionRepo")
  return &subscriptionRepo{db: db, log: repoLog}
}

func (sr *subscriptionRepo) Create(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if err := transaction.WithContext(ctx).Create(sub).Error; err != nil {
    return nil, err
  }
  return sub, nil
}

func (sr *subscriptionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Subscription, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var result types.Subscription
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

func (sr *subscriptionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Subscription, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var results []*types.Subscription
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (sr *subscriptionRepo) Update(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if sub == nil || sub.ID == uuid.Nil {
    return nil, nil
  }
  if err := transaction.WithContext(ctx).Save(sub).Error; err != nil {
    return nil, err
  }
  return sub, nil
}
