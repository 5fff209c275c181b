package services

import (
  "context"
  "encoding/json"
  "fmt"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type PreferencesInput struct {
  Industry     string
  BusinessSize string
  Interests    []string
  Languages    []string
}

type PreferencesService interface {
  Get(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error)
  Save(ctx context.Context, userID uuid.UUID, input PreferencesInput) (*types.UserPreferences, error)
}

type preferencesService struct {
  db        *gorm.DB
  log       *logger.Logger
  prefsRepo repos.PreferencesRepo
}

func NewPreferencesService(db *gorm.DB, log *logger.Logger, prefsRepo repos.PreferencesRepo) PreferencesService {
  serviceLog := log.With("service", "PreferencesService")
  return &preferencesService{db: db, log: serviceLog, prefsRepo: prefsRepo}
}

// Get returns nil without error when the user never saved preferences.
func (ps *preferencesService) Get(ctx context.Context, userID uuid.UUID) (*types.UserPreferences, error) {
  prefs, err := ps.prefsRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch preferences: %w", err)
  }
  return prefs, nil
}

// Save upserts: the first save inserts, later saves update in place.
func (ps *preferencesService) Save(ctx context.Context, userID uuid.UUID, input PreferencesInput) (*types.UserPreferences, error) {
  prefs := &types.UserPreferences{
    UserID:       userID,
    Industry:     input.Industry,
    BusinessSize: input.BusinessSize,
    Interests:    encodeStringArray(input.Interests),
    Languages:    encodeStringArray(input.Languages),
  }
  saved, err := ps.prefsRepo.Upsert(ctx, nil, prefs)
  if err != nil {
    return nil, fmt.Errorf("Failed to save preferences: %w", err)
  }
  return saved, nil
}

func encodeStringArray(values []string) datatypes.JSON {
  if values == nil {
    values = []string{}
  }
  raw, err := json.Marshal(values)
  if err != nil {
    return datatypes.JSON("[]")
  }
  return datatypes.JSON(raw)
}
