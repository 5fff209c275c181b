package services

import (
  "context"
  "errors"
  "net/http"
  "testing"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type fakeContactRepo struct {
  submissions []*types.ContactSubmission
}

func (f *fakeContactRepo) Create(ctx context.Context, tx *gorm.DB, contact *types.ContactSubmission) (*types.ContactSubmission, error) {
  f.submissions = append(f.submissions, contact)
  return contact, nil
}

func (f *fakeContactRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.ContactSubmission, error) {
  return f.submissions, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ContactSubmission, error) {
  for _, s := range f.submissions {
    if s.ID == id {
      return s, nil
    }
  }
  return nil, nil
}

func newContactFixture(t *testing.T) (ContactService, *fakeContactRepo) {
  t.Helper()
  repo := &fakeContactRepo{}
  svc := NewContactService(newTestDB(t), newTestLogger(t), repo)
  return svc, repo
}

func TestContactSubmit_RequiresCoreFields(t *testing.T) {
  svc, repo := newContactFixture(t)

  _, err := svc.Submit(context.Background(), ContactInput{Name: "Asha", Email: "asha@example.com"})
  var ae *apierr.Error
  if !errors.As(err, &ae) || ae.Status != http.StatusBadRequest {
    t.Fatalf("expected 400 apierr for missing fields, got %v", err)
  }
  if len(repo.submissions) != 0 {
    t.Fatalf("rejected submission must not persist")
  }
}

func TestContactListAndGet(t *testing.T) {
  svc, _ := newContactFixture(t)

  first, err := svc.Submit(context.Background(), ContactInput{
    Name:    "Asha",
    Email:   "asha@example.com",
    Phone:   "+911234567890",
    Message: "Interested in a WhatsApp bot",
  })
  if err != nil {
    t.Fatalf("Submit returned error: %v", err)
  }

  listed, err := svc.List(context.Background())
  if err != nil {
    t.Fatalf("List returned error: %v", err)
  }
  if len(listed) != 1 || listed[0].ID != first.ID {
    t.Fatalf("unexpected listing: %+v", listed)
  }

  fetched, err := svc.Get(context.Background(), first.ID)
  if err != nil {
    t.Fatalf("Get returned error: %v", err)
  }
  if fetched.Message != "Interested in a WhatsApp bot" {
    t.Fatalf("unexpected submission: %+v", fetched)
  }

  _, err = svc.Get(context.Background(), uuid.New())
  var ae *apierr.Error
  if !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
    t.Fatalf("expected 404 apierr for unknown id, got %v", err)
  }
}
