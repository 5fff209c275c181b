package services

import (
  "context"
  "fmt"
  "net/http"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type ToolInput struct {
  Name          string
  ToolType      types.ToolType
  Configuration datatypes.JSON
  Active        *bool
}

type ToolService interface {
  Create(ctx context.Context, userID uuid.UUID, input ToolInput) (*types.AiTool, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.AiTool, error)
  Get(ctx context.Context, userID, toolID uuid.UUID) (*types.AiTool, error)
  Update(ctx context.Context, userID, toolID uuid.UUID, input ToolInput) (*types.AiTool, error)
  Delete(ctx context.Context, userID, toolID uuid.UUID) error
  ListChatLogs(ctx context.Context, userID, toolID uuid.UUID) ([]*types.ChatLog, error)
}

type toolService struct {
  db          *gorm.DB
  log         *logger.Logger
  toolRepo    repos.AiToolRepo
  chatLogRepo repos.ChatLogRepo
}

func NewToolService(db *gorm.DB, log *logger.Logger, toolRepo repos.AiToolRepo, chatLogRepo repos.ChatLogRepo) ToolService {
  serviceLog := log.With("service", "ToolService")
  return &toolService{db: db, log: serviceLog, toolRepo: toolRepo, chatLogRepo: chatLogRepo}
}

func (ts *toolService) Create(ctx context.Context, userID uuid.UUID, input ToolInput) (*types.AiTool, error) {
  if input.Name == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_tool", fmt.Errorf("a tool name is required"))
  }
  if !types.IsValidToolType(input.ToolType) {
    return nil, apierr.New(http.StatusBadRequest, "invalid_tool_type", fmt.Errorf("unknown tool type %q", input.ToolType))
  }
  tool := &types.AiTool{
    ID:            uuid.New(),
    UserID:        userID,
    Name:          input.Name,
    ToolType:      input.ToolType,
    Configuration: input.Configuration,
    Active:        true,
  }
  if input.Active != nil {
    tool.Active = *input.Active
  }
  created, err := ts.toolRepo.Create(ctx, nil, tool)
  if err != nil {
    return nil, fmt.Errorf("Failed to create tool: %w", err)
  }
  return created, nil
}

func (ts *toolService) List(ctx context.Context, userID uuid.UUID) ([]*types.AiTool, error) {
  tools, err := ts.toolRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list tools: %w", err)
  }
  return tools, nil
}

// Get enforces the ownership boundary: absent rows are 404, rows owned by
// another user are 403.
func (ts *toolService) Get(ctx context.Context, userID, toolID uuid.UUID) (*types.AiTool, error) {
  tool, err := ts.toolRepo.GetByID(ctx, nil, toolID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch tool: %w", err)
  }
  if tool == nil {
    return nil, apierr.New(http.StatusNotFound, "tool_not_found", fmt.Errorf("tool not found"))
  }
  if tool.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("tool belongs to another user"))
  }
  return tool, nil
}

func (ts *toolService) Update(ctx context.Context, userID, toolID uuid.UUID, input ToolInput) (*types.AiTool, error) {
  tool, err := ts.Get(ctx, userID, toolID)
  if err != nil {
    return nil, err
  }
  if input.Name != "" {
    tool.Name = input.Name
  }
  if input.ToolType != "" {
    if !types.IsValidToolType(input.ToolType) {
      return nil, apierr.New(http.StatusBadRequest, "invalid_tool_type", fmt.Errorf("unknown tool type %q", input.ToolType))
    }
    tool.ToolType = input.ToolType
  }
  if input.Configuration != nil {
    tool.Configuration = input.Configuration
  }
  if input.Active != nil {
    tool.Active = *input.Active
  }
  updated, err := ts.toolRepo.Update(ctx, nil, tool)
  if err != nil {
    return nil, fmt.Errorf("Failed to update tool: %w", err)
  }
  return updated, nil
}

func (ts *toolService) Delete(ctx context.Context, userID, toolID uuid.UUID) error {
  if _, err := ts.Get(ctx, userID, toolID); err != nil {
    return err
  }
  if err := ts.toolRepo.Delete(ctx, nil, toolID); err != nil {
    return fmt.Errorf("Failed to delete tool: %w", err)
  }
  return nil
}

func (ts *toolService) ListChatLogs(ctx context.Context, userID, toolID uuid.UUID) ([]*types.ChatLog, error) {
  if _, err := ts.Get(ctx, userID, toolID); err != nil {
    return nil, err
  }
  chatLogs, err := ts.chatLogRepo.GetByToolID(ctx, nil, toolID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list chat logs: %w", err)
  }
  return chatLogs, nil
}
