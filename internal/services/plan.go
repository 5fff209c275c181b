package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type PlanService interface {
  List(ctx context.Context) ([]*types.Plan, error)
}

type planService struct {
  db       *gorm.DB
  log      *logger.Logger
  planRepo repos.PlanRepo
}

func NewPlanService(db *gorm.DB, log *logger.Logger, planRepo repos.PlanRepo) PlanService {
  serviceLog := log.With("service", "PlanService")
  return &planService{db: db, log: serviceLog, planRepo: planRepo}
}

func (ps *planService) List(ctx context.Context) ([]*types.Plan, error) {
  plans, err := ps.planRepo.List(ctx, nil)
  if err != nil {
    return nil, fmt.Errorf("Failed to list plans: %w", err)
  }
  return plans, nil
}
