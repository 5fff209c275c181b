package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type PlanRepo interface {
  Create(ctx context.Context, tx *gorm.DB, plan *types.Plan) (*types.Plan, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Plan, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Plan, error)
}

type planRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
  repoLog := baseLog.With("repo", "PlanRepo")
  return &planRepo{db: db, log: repoLog}
}

func (pr *planRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.Plan) (*types.Plan, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  if err := transaction.WithContext(ctx).Create(plan).Error; err != nil {
    return nil, err
  }
  return plan, nil
}

func (pr *planRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Plan, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  var results []*types.Plan
  if err := transaction.WithContext(ctx).
    Order("monthly_price ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (pr *planRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Plan, error) {
  transaction := tx
  if transaction == nil {
    transaction = pr.db
  }
  var result types.Plan
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
