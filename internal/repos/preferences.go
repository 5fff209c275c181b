package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type PreferencesRepo interface {
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error)
  Upsert(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error)
}

type preferencesRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPreferencesRepo(db *gorm.DB, baseLog *logger.Logger) PreferencesRepo {
  repoLog := baseLog.With("repo", "PreferencesRepo")
  return &preferencesRepo{db: db, log: repoLog}
}

func (pr *preferencesRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  if userID == uuid.Nil {
    return nil, nil
  }
  var result types.UserPreferences
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Limit(1).
    Find(&result).Error; err != nil {
    return nil, err
  }
  if result.ID == uuid.Nil {
    return nil, nil
  }
  return &result, nil
}

func (pr *preferencesRepo) Upsert(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  if prefs == nil || prefs.UserID == uuid.Nil {
    return nil, nil
  }
  if prefs.ID == uuid.Nil {
    prefs.ID = uuid.New()
  }
  prefs.UpdatedAt = time.Now().UTC()
  if err := transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns: []clause.Column{{Name: "user_id"}},
      DoUpdates: clause.AssignmentColumns([]string{
        "industry",
        "business_size",
        "interests",
        "languages",
        "updated_at",
      }),
    }).
    Create(prefs).Error; err != nil {
    return nil, err
  }
  return pr.GetByUserID(ctx, transaction, prefs.UserID)
}
