package repos

import (
  "context"
  "testing"

  "github.com/google/uuid"

  "github.com/vyaparai/vyaparai-backend/internal/types"
)

func TestPlanCreateAndListOrderedByPrice(t *testing.T) {
  db := newTestDB(t)
  repo := NewPlanRepo(db, newTestLogger(t))

  seed := []*types.Plan{
    {ID: uuid.New(), Name: "Growth", MonthlyPrice: 2499, YearlyPrice: 23990, Popular: true},
    {ID: uuid.New(), Name: "Starter", MonthlyPrice: 999, YearlyPrice: 9590},
    {ID: uuid.New(), Name: "Enterprise", MonthlyPrice: 4999, YearlyPrice: 47990},
  }
  for _, plan := range seed {
    if _, err := repo.Create(context.Background(), nil, plan); err != nil {
      t.Fatalf("create failed for %s: %v", plan.Name, err)
    }
  }

  listed, err := repo.List(context.Background(), nil)
  if err != nil {
    t.Fatalf("list failed: %v", err)
  }
  if len(listed) != 3 {
    t.Fatalf("expected 3 plans, got %d", len(listed))
  }
  want := []string{"Starter", "Growth", "Enterprise"}
  for i, name := range want {
    if listed[i].Name != name {
      t.Fatalf("plans not ordered by monthly price: got %s at %d", listed[i].Name, i)
    }
  }
}

func TestPlanGetByID_UnknownIsNil(t *testing.T) {
  db := newTestDB(t)
  repo := NewPlanRepo(db, newTestLogger(t))

  plan, err := repo.GetByID(context.Background(), nil, uuid.New())
  if err != nil {
    t.Fatalf("get failed: %v", err)
  }
  if plan != nil {
    t.Fatalf("expected nil for unknown plan, got %+v", plan)
  }
}
