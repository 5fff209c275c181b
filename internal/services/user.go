package services

import (
  "context"
  "fmt"
  "net/http"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/normalization"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
  "github.com/vyaparai/vyaparai-backend/internal/utils"
)

// ProfileUpdate is a shallow patch: nil fields are left untouched. A supplied
// password is re-hashed before storage.
type ProfileUpdate struct {
  Name      *string
  Company   *string
  Phone     *string
  Password  *string
}

type UserService interface {
  GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error)
  UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.User, error)
}

type userService struct {
  db        *gorm.DB
  log       *logger.Logger
  userRepo  repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
  user, err := us.userRepo.GetByID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch user: %w", err)
  }
  if user == nil {
    return nil, apierr.New(http.StatusNotFound, "user_not_found", fmt.Errorf("user not found"))
  }
  return user, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*types.User, error) {
  user, err := us.GetProfile(ctx, userID)
  if err != nil {
    return nil, err
  }
  if update.Name != nil {
    user.Name = normalization.TrimInputString(*update.Name)
  }
  if update.Company != nil {
    user.Company = normalization.TrimInputString(*update.Company)
  }
  if update.Phone != nil {
    user.Phone = normalization.TrimInputString(*update.Phone)
  }
  if update.Password != nil && *update.Password != "" {
    user.Password = *update.Password
    if hErr := utils.HashPassword(ctx, us.log, user); hErr != nil {
      return nil, hErr
    }
  }
  updated, err := us.userRepo.Update(ctx, nil, user)
  if err != nil {
    return nil, fmt.Errorf("Failed to update user: %w", err)
  }
  return updated, nil
}
