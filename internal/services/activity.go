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

type ActivityInput struct {
  ActivityType string
  EntityType   string
  EntityID     *uuid.UUID
  Metadata     datatypes.JSON
}

type ActivityService interface {
  Record(ctx context.Context, userID uuid.UUID, input ActivityInput) (*types.UserActivity, error)
}

type activityService struct {
  db           *gorm.DB
  log          *logger.Logger
  activityRepo repos.ActivityRepo
}

func NewActivityService(db *gorm.DB, log *logger.Logger, activityRepo repos.ActivityRepo) ActivityService {
  serviceLog := log.With("service", "ActivityService")
  return &activityService{db: db, log: serviceLog, activityRepo: activityRepo}
}

// Record appends one activity row; rows are never updated afterwards.
func (as *activityService) Record(ctx context.Context, userID uuid.UUID, input ActivityInput) (*types.UserActivity, error) {
  if input.ActivityType == "" || input.EntityType == "" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_activity", fmt.Errorf("activity type and entity type are required"))
  }
  activity := &types.UserActivity{
    ID:           uuid.New(),
    UserID:       userID,
    ActivityType: input.ActivityType,
    EntityType:   input.EntityType,
    EntityID:     input.EntityID,
    Metadata:     input.Metadata,
  }
  created, err := as.activityRepo.Create(ctx, nil, activity)
  if err != nil {
    return nil, fmt.Errorf("Failed to record activity: %w", err)
  }
  return created, nil
}
