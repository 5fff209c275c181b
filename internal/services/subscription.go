package services

import (
  "context"
  "fmt"
  "net/http"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type SubscriptionInput struct {
  PlanID        uuid.UUID
  BillingPeriod string
}

type SubscriptionService interface {
  Create(ctx context.Context, userID uuid.UUID, input SubscriptionInput) (*types.Subscription, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.Subscription, error)
  Cancel(ctx context.Context, userID, subscriptionID uuid.UUID) (*types.Subscription, error)
}

type subscriptionService struct {
  db               *gorm.DB
  log              *logger.Logger
  subscriptionRepo repos.SubscriptionRepo
  planRepo         repos.PlanRepo
}

func NewSubscriptionService(db *gorm.DB, log *logger.Logger, subscriptionRepo repos.SubscriptionRepo, planRepo repos.PlanRepo) SubscriptionService {
  serviceLog := log.With("service", "SubscriptionService")
  return &subscriptionService{db: db, log: serviceLog, subscriptionRepo: subscriptionRepo, planRepo: planRepo}
}

func (ss *subscriptionService) Create(ctx context.Context, userID uuid.UUID, input SubscriptionInput) (*types.Subscription, error) {
  plan, err := ss.planRepo.GetByID(ctx, nil, input.PlanID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch plan: %w", err)
  }
  if plan == nil {
    return nil, apierr.New(http.StatusNotFound, "plan_not_found", fmt.Errorf("plan not found"))
  }
  period := input.BillingPeriod
  if period == "" {
    period = "monthly"
  }
  if period != "monthly" && period != "yearly" {
    return nil, apierr.New(http.StatusBadRequest, "invalid_subscription", fmt.Errorf("billing period must be monthly or yearly"))
  }
  now := time.Now().UTC()
  expires := now.AddDate(0, 1, 0)
  if period == "yearly" {
    expires = now.AddDate(1, 0, 0)
  }
  sub := &types.Subscription{
    ID:            uuid.New(),
    UserID:        userID,
    PlanID:        plan.ID,
    Status:        types.SubscriptionStatusActive,
    BillingPeriod: period,
    StartedAt:     now,
    ExpiresAt:     &expires,
  }
  created, err := ss.subscriptionRepo.Create(ctx, nil, sub)
  if err != nil {
    return nil, fmt.Errorf("Failed to create subscription: %w", err)
  }
  return created, nil
}

// Cancel marks the subscription cancelled. Cancelling twice is a no-op; an
// expired subscription cannot be cancelled.
func (ss *subscriptionService) Cancel(ctx context.Context, userID, subscriptionID uuid.UUID) (*types.Subscription, error) {
  sub, err := ss.subscriptionRepo.GetByID(ctx, nil, subscriptionID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch subscription: %w", err)
  }
  if sub == nil {
    return nil, apierr.New(http.StatusNotFound, "subscription_not_found", fmt.Errorf("subscription not found"))
  }
  if sub.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("subscription belongs to another user"))
  }
  if sub.Status == types.SubscriptionStatusCancelled {
    return sub, nil
  }
  if sub.Status == types.SubscriptionStatusExpired {
    return nil, apierr.New(http.StatusBadRequest, "invalid_subscription", fmt.Errorf("an expired subscription cannot be cancelled"))
  }
  sub.Status = types.SubscriptionStatusCancelled
  updated, err := ss.subscriptionRepo.Update(ctx, nil, sub)
  if err != nil {
    return nil, fmt.Errorf("Failed to cancel subscription: %w", err)
  }
  return updated, nil
}

func (ss *subscriptionService) List(ctx context.Context, userID uuid.UUID) ([]*types.Subscription, error) {
  subs, err := ss.subscriptionRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list subscriptions: %w", err)
  }
  return subs, nil
}
