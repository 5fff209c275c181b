package services

import (
  "context"
  "errors"
  "net/http"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type fakePlanRepo struct {
  plans map[uuid.UUID]*types.Plan
}

func (f *fakePlanRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.Plan) (*types.Plan, error) {
  f.plans[plan.ID] = plan
  return plan, nil
}

func (f *fakePlanRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Plan, error) {
  var out []*types.Plan
  for _, p := range f.plans {
    out = append(out, p)
  }
  return out, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Plan, error) {
  return f.plans[id], nil
}

type fakeSubscriptionRepo struct {
  subs []*types.Subscription
}

func (f *fakeSubscriptionRepo) Create(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error) {
  f.subs = append(f.subs, sub)
  return sub, nil
}

func (f *fakeSubscriptionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Subscription, error) {
  for _, s := range f.subs {
    if s.ID == id {
      return s, nil
    }
  }
  return nil, nil
}

func (f *fakeSubscriptionRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Subscription, error) {
  var out []*types.Subscription
  for _, s := range f.subs {
    if s.UserID == userID {
      out = append(out, s)
    }
  }
  return out, nil
}

func (f *fakeSubscriptionRepo) Update(ctx context.Context, tx *gorm.DB, sub *types.Subscription) (*types.Subscription, error) {
  return sub, nil
}

func newSubscriptionFixture(t *testing.T) (SubscriptionService, *fakePlanRepo, *fakeSubscriptionRepo) {
  t.Helper()
  planRepo := &fakePlanRepo{plans: map[uuid.UUID]*types.Plan{}}
  subRepo := &fakeSubscriptionRepo{}
  svc := NewSubscriptionService(newTestDB(t), newTestLogger(t), subRepo, planRepo)
  return svc, planRepo, subRepo
}

func TestSubscriptionCreate_MonthlyDefaultAndExpiry(t *testing.T) {
  svc, planRepo, _ := newSubscriptionFixture(t)
  plan := &types.Plan{ID: uuid.New(), Name: "Starter", MonthlyPrice: 999, YearlyPrice: 9590}
  planRepo.plans[plan.ID] = plan
  userID := uuid.New()

  sub, err := svc.Create(context.Background(), userID, SubscriptionInput{PlanID: plan.ID})
  if err != nil {
    t.Fatalf("Create returned error: %v", err)
  }
  if sub.BillingPeriod != "monthly" {
    t.Fatalf("expected monthly default, got %q", sub.BillingPeriod)
  }
  if sub.Status != types.SubscriptionStatusActive {
    t.Fatalf("new subscription should be active, got %q", sub.Status)
  }
  if sub.ExpiresAt == nil {
    t.Fatalf("expiry not set")
  }
  gap := sub.ExpiresAt.Sub(sub.StartedAt)
  if gap < 27*24*time.Hour || gap > 32*24*time.Hour {
    t.Fatalf("monthly expiry out of range: %v", gap)
  }
}

func TestSubscriptionCreate_YearlyExpiry(t *testing.T) {
  svc, planRepo, _ := newSubscriptionFixture(t)
  plan := &types.Plan{ID: uuid.New(), Name: "Growth", MonthlyPrice: 2499, YearlyPrice: 23990}
  planRepo.plans[plan.ID] = plan

  sub, err := svc.Create(context.Background(), uuid.New(), SubscriptionInput{PlanID: plan.ID, BillingPeriod: "yearly"})
  if err != nil {
    t.Fatalf("Create returned error: %v", err)
  }
  gap := sub.ExpiresAt.Sub(sub.StartedAt)
  if gap < 364*24*time.Hour || gap > 367*24*time.Hour {
    t.Fatalf("yearly expiry out of range: %v", gap)
  }
}

func TestSubscriptionCancel_OwnershipAndTransitions(t *testing.T) {
  svc, planRepo, subRepo := newSubscriptionFixture(t)
  plan := &types.Plan{ID: uuid.New(), Name: "Starter", MonthlyPrice: 999}
  planRepo.plans[plan.ID] = plan
  owner := uuid.New()
  stranger := uuid.New()

  sub, err := svc.Create(context.Background(), owner, SubscriptionInput{PlanID: plan.ID})
  if err != nil {
    t.Fatalf("Create returned error: %v", err)
  }

  var ae *apierr.Error
  _, err = svc.Cancel(context.Background(), owner, uuid.New())
  if !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
    t.Fatalf("unknown id: expected 404 apierr, got %v", err)
  }

  _, err = svc.Cancel(context.Background(), stranger, sub.ID)
  if !errors.As(err, &ae) || ae.Status != http.StatusForbidden {
    t.Fatalf("foreign subscription: expected 403 apierr, got %v", err)
  }

  cancelled, err := svc.Cancel(context.Background(), owner, sub.ID)
  if err != nil {
    t.Fatalf("Cancel returned error: %v", err)
  }
  if cancelled.Status != types.SubscriptionStatusCancelled {
    t.Fatalf("expected cancelled status, got %q", cancelled.Status)
  }

  // Cancelling again is a no-op.
  again, err := svc.Cancel(context.Background(), owner, sub.ID)
  if err != nil {
    t.Fatalf("repeat Cancel returned error: %v", err)
  }
  if again.Status != types.SubscriptionStatusCancelled {
    t.Fatalf("repeat cancel changed status to %q", again.Status)
  }

  expired := &types.Subscription{ID: uuid.New(), UserID: owner, PlanID: plan.ID, Status: types.SubscriptionStatusExpired}
  subRepo.subs = append(subRepo.subs, expired)
  _, err = svc.Cancel(context.Background(), owner, expired.ID)
  if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
    t.Fatalf("expired subscription: expected 400 apierr, got %v", err)
  }
}

func TestSubscriptionCreate_Rejections(t *testing.T) {
  svc, planRepo, subRepo := newSubscriptionFixture(t)
  plan := &types.Plan{ID: uuid.New(), Name: "Starter"}
  planRepo.plans[plan.ID] = plan

  _, err := svc.Create(context.Background(), uuid.New(), SubscriptionInput{PlanID: uuid.New()})
  var ae *apierr.Error
  if !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
    t.Fatalf("unknown plan: expected 404 apierr, got %v", err)
  }

  _, err = svc.Create(context.Background(), uuid.New(), SubscriptionInput{PlanID: plan.ID, BillingPeriod: "weekly"})
  if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
    t.Fatalf("bad period: expected 400 apierr, got %v", err)
  }
  if len(subRepo.subs) != 0 {
    t.Fatalf("rejected requests must not persist subscriptions")
  }
}
