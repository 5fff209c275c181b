package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type ChatLogRepo interface {
  Create(ctx context.Context, tx *gorm.DB, chatLog *types.ChatLog) (*types.ChatLog, error)
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatLog, error)
  GetByToolID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) ([]*types.ChatLog, error)
}

type chatLogRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewChatLogRepo(db *gorm.DB, baseLog *logger.Logger) ChatLogRepo {
  repoLog := baseLog.With("repo", "ChatLogRepo")
  return &chatLogRepo{db: db, log: repoLog}
}

func (cr *chatLogRepo) Create(ctx context.Context, tx *gorm.DB, chatLog *types.ChatLog) (*types.ChatLog, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  if err := transaction.WithContext(ctx).Create(chatLog).Error; err != nil {
    return nil, err
  }
  return chatLog, nil
}

func (cr *chatLogRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.ChatLog, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var results []*types.ChatLog
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (cr *chatLogRepo) GetByToolID(ctx context.Context, tx *gorm.DB, toolID uuid.UUID) ([]*types.ChatLog, error) {
  transaction := tx
  if transaction == nil {
    transaction = cr.db
  }
  var results []*types.ChatLog
  if err := transaction.WithContext(ctx).
    Where("tool_id = ?", toolID).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
