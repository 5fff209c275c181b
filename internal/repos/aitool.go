package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type AiToolRepo interface {
  Create(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiTool, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiTool, error)
  Update(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type aiToolRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAiToolRepo(db *gorm.DB, baseLog *logger.Logger) AiToolRepo {
  repoLog := baseLog.With("repo", "AiToolRepo")
  return &aiToolRepo{db: db, log: repoLog}
}

func (tr *aiToolRepo) Create(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  if err := transaction.WithContext(ctx).Create(tool).Error; err != nil {
    return nil, err
  }
  return tool, nil
}

func (tr *aiToolRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiTool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  var result types.AiTool
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

func (tr *aiToolRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiTool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  var results []*types.AiTool
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("updated_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (tr *aiToolRepo) Update(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error) {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  if tool == nil || tool.ID == uuid.Nil {
    return nil, nil
  }
  if err := transaction.WithContext(ctx).Save(tool).Error; err != nil {
    return nil, err
  }
  return tool, nil
}

func (tr *aiToolRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = tr.db
  }
  return transaction.WithContext(ctx).
    Where("id = ?", id).
    Delete(&types.AiTool{}).Error
}
