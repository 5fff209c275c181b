package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type ActivityRepo interface {
  Create(ctx context.Context, tx *gorm.DB, activity *types.UserActivity) (*types.UserActivity, error)
  GetRecentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.UserActivity, error)
}

type activityRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewActivityRepo(db *gorm.DB, baseLog *logger.Logger) ActivityRepo {
  repoLog := baseLog.With("repo", "ActivityRepo")
  return &activityRepo{db: db, log: repoLog}
}

func (ar *activityRepo) Create(ctx context.Context, tx *gorm.DB, activity *types.UserActivity) (*types.UserActivity, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  if err := transaction.WithContext(ctx).Create(activity).Error; err != nil {
    return nil, err
  }
  return activity, nil
}

func (ar *activityRepo) GetRecentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.UserActivity, error) {
  transaction := tx
  if transaction == nil {
    transaction = ar.db
  }
  var results []*types.UserActivity
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND created_at >= ?", userID, since).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
