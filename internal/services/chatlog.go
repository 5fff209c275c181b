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

type ChatLogInput struct {
  ToolID    uuid.UUID
  SessionID string
  Role      string
  Message   string
}

type ChatLogService interface {
  Append(ctx context.Context, userID uuid.UUID, input ChatLogInput) (*types.ChatLog, error)
  ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.ChatLog, error)
}

type chatLogService struct {
  db          *gorm.DB
  log         *logger.Logger
  chatLogRepo repos.ChatLogRepo
  toolRepo    repos.AiToolRepo
}

func NewChatLogService(db *gorm.DB, log *logger.Logger, chatLogRepo repos.ChatLogRepo, toolRepo repos.AiToolRepo) ChatLogService {
  serviceLog := log.With("service", "ChatLogService")
  return &chatLogService{db: db, log: serviceLog, chatLogRepo: chatLogRepo, toolRepo: toolRepo}
}

// Append stores one chat turn under a tool the caller owns.
func (cs *chatLogService) Append(ctx context.Context, userID uuid.UUID, input ChatLogInput) (*types.ChatLog, error) {
  if input.Message == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_chat_log", fmt.Errorf("a message is required"))
  }
  if input.Role != "user" && input.Role != "assistant" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_chat_log", fmt.Errorf("role must be user or assistant"))
  }
  tool, err := cs.toolRepo.GetByID(ctx, nil, input.ToolID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch tool: %w", err)
  }
  if tool == nil {
    return nil, apierr.New(http.StatusNotFound, "tool_not_found", fmt.Errorf("tool not found"))
  }
  if tool.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("tool belongs to another user"))
  }
  chatLog := &types.ChatLog{
    ID:        uuid.New(),
    UserID:    userID,
    ToolID:    input.ToolID,
    SessionID: input.SessionID,
    Role:      input.Role,
    Message:   input.Message,
  }
  created, err := cs.chatLogRepo.Create(ctx, nil, chatLog)
  if err != nil {
    return nil, fmt.Errorf("Failed to create chat log: %w", err)
  }
  return created, nil
}

func (cs *chatLogService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.ChatLog, error) {
  chatLogs, err := cs.chatLogRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list chat logs: %w", err)
  }
  return chatLogs, nil
}
