package utils

import (
  "context"
  "fmt"
  "strings"
  "golang.org/x/crypto/bcrypt"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/normalization"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

const minPasswordLength = 8

func ValidateRegistration(ctx context.Context, userRepo repos.UserRepo, log *logger.Logger, user *types.User) error {
  if user == nil {
    return fmt.Errorf("no user given, cannot proceed with registration")
  }
  if user.Email == "" {
    return fmt.Errorf("an email is required to register")
  }
  if !strings.Contains(user.Email, "@") {
    return fmt.Errorf("a valid email is required to register")
  }
  if user.Name == "" {
    return fmt.Errorf("a name is required to register")
  }
  if user.Password == "" {
    return fmt.Errorf("a password is required to register")
  }
  if len(user.Password) < minPasswordLength {
    return fmt.Errorf("password must be at least %d characters", minPasswordLength)
  }
  emailExists, err := userRepo.EmailExists(ctx, nil, user.Email)
  if err != nil {
    return fmt.Errorf("failed to check user email")
  }
  if emailExists {
    return fmt.Errorf("email is already in use")
  }
  return nil
}

func ValidateLogin(email, password string) error {
  if email == "" {
    return fmt.Errorf("email is required to login")
  }
  if password == "" {
    return fmt.Errorf("password is required to login")
  }
  return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, user *types.User) error {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
  if err != nil {
    return fmt.Errorf("failed to hash password")
  }
  user.Password = string(hashedPassword)
  return nil
}

func NormalizeUserFields(ctx context.Context, user *types.User) {
  user.Email = normalization.ParseInputString(user.Email)
  user.Name = normalization.TrimInputString(user.Name)
  user.Company = normalization.TrimInputString(user.Company)
  user.Phone = normalization.TrimInputString(user.Phone)
}
