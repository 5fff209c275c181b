package repos

import (
  "context"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type RecommendationRepo interface {
  CreateBatch(ctx context.Context, tx *gorm.DB, recs []*types.AiRecommendation) ([]*types.AiRecommendation, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiRecommendation, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiRecommendation, error)
  MarkClicked(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  MarkImplemented(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  PruneKeepNewest(ctx context.Context, tx *gorm.DB, userID uuid.UUID, keep int) error
}

type recommendationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewRecommendationRepo(db *gorm.DB, baseLog *logger.Logger) RecommendationRepo {
  repoLog := baseLog.With("repo", "RecommendationRepo")
  return &recommendationRepo{db: db, log: repoLog}
}

func (rr *recommendationRepo) CreateBatch(ctx context.Context, tx *gorm.DB, recs []*types.AiRecommendation) ([]*types.AiRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if len(recs) == 0 {
    return []*types.AiRecommendation{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&recs).Error; err != nil {
    return nil, err
  }
  return recs, nil
}

func (rr *recommendationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var result types.AiRecommendation
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

func (rr *recommendationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  var results []*types.AiRecommendation
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// MarkClicked latches clicked to true; it never toggles back.
func (rr *recommendationRepo) MarkClicked(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return rr.markFlag(ctx, tx, id, "clicked")
}

func (rr *recommendationRepo) MarkImplemented(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return rr.markFlag(ctx, tx, id, "implemented")
}

func (rr *recommendationRepo) markFlag(ctx context.Context, tx *gorm.DB, id uuid.UUID, column string) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  return transaction.WithContext(ctx).
    Model(&types.AiRecommendation{}).
    Where("id = ?", id).
    Updates(map[string]interface{}{
      column:       true,
      "updated_at": time.Now().UTC(),
    }).Error
}

// PruneKeepNewest enforces the per-user retention bound with a single
// set-based DELETE, so there is no read-then-delete window for a concurrent
// generation to interleave with.
func (rr *recommendationRepo) PruneKeepNewest(ctx context.Context, tx *gorm.DB, userID uuid.UUID, keep int) error {
  transaction := tx
  if transaction == nil {
    transaction = rr.db
  }
  if keep < 0 {
    keep = 0
  }
  newest := transaction.
    Model(&types.AiRecommendation{}).
    Select("id").
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Limit(keep)
  return transaction.WithContext(ctx).
    Where("user_id = ? AND id NOT IN (?)", userID, newest).
    Delete(&types.AiRecommendation{}).Error
}
