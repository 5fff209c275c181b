package services

import (
  "context"
  "fmt"
  "net/http"
  "time"
  "github.com/golang-jwt/jwt/v5"
  "github.com/google/uuid"
  "golang.org/x/crypto/bcrypt"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/normalization"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
  "github.com/vyaparai/vyaparai-backend/internal/utils"
)

type JWTClaims struct {
  UserID  uuid.UUID   `json:"id"`
  Email   string      `json:"email"`
  Role    string      `json:"role"`
  jwt.RegisteredClaims
}

type AuthService interface {
  RegisterUser(ctx context.Context, user *types.User) (*types.User, string, error)
  LoginUser(ctx context.Context, email, password string) (*types.User, string, error)
  ParseToken(tokenString string) (*JWTClaims, error)
  GetAccessTTL() time.Duration
}

type authService struct {
  db            *gorm.DB
  log           *logger.Logger
  userRepo      repos.UserRepo
  jwtSecretKey  string
  accessTTL     time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
  serviceLog := log.With("service", "AuthService")
  return &authService{
    db:           db,
    log:          serviceLog,
    userRepo:     userRepo,
    jwtSecretKey: jwtSecretKey,
    accessTTL:    accessTTL,
  }
}

func (as *authService) RegisterUser(ctx context.Context, user *types.User) (*types.User, string, error) {
  utils.NormalizeUserFields(ctx, user)
  if vErr := utils.ValidateRegistration(ctx, as.userRepo, as.log, user); vErr != nil {
    return nil, "", apierr.New(http.StatusBadRequest, "invalid_registration", vErr)
  }
  if hErr := utils.HashPassword(ctx, as.log, user); hErr != nil {
    return nil, "", hErr
  }
  user.ID = uuid.New()
  if user.Role == "" {
    user.Role = "user"
  }
  if _, err := as.userRepo.Create(ctx, nil, []*types.User{user}); err != nil {
    return nil, "", fmt.Errorf("Failed to create user: %w", err)
  }
  token, err := as.generateAccessToken(user)
  if err != nil {
    return nil, "", fmt.Errorf("Generate access token error: %w", err)
  }
  return user, token, nil
}

func (as *authService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
  email = normalization.ParseInputString(email)
  if vErr := utils.ValidateLogin(email, password); vErr != nil {
    return nil, "", apierr.New(http.StatusBadRequest, "invalid_login", vErr)
  }
  user, err := as.userRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    return nil, "", fmt.Errorf("Error retrieving user by email: %w", err)
  }
  if user == nil {
    return nil, "", apierr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("invalid email or password"))
  }
  if hErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); hErr != nil {
    return nil, "", apierr.New(http.StatusUnauthorized, "invalid_credentials", fmt.Errorf("invalid email or password"))
  }
  token, err := as.generateAccessToken(user)
  if err != nil {
    return nil, "", fmt.Errorf("Generate access token error: %w", err)
  }
  return user, token, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
  now := time.Now()
  claims := JWTClaims{
    UserID: user.ID,
    Email:  user.Email,
    Role:   user.Role,
    RegisteredClaims: jwt.RegisteredClaims{
      Subject:   user.ID.String(),
      ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
      IssuedAt:  jwt.NewNumericDate(now),
    },
  }
  token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
  return token.SignedString([]byte(as.jwtSecretKey))
}

// ParseToken verifies signature and expiry. Tokens are stateless: there is no
// revocation list, a token stays valid for its full TTL.
func (as *authService) ParseToken(tokenString string) (*JWTClaims, error) {
  parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
    if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
      return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
    }
    return []byte(as.jwtSecretKey), nil
  })
  if err != nil {
    return nil, fmt.Errorf("Failed to parse token: %w", err)
  }
  claims, ok := parsedToken.Claims.(*JWTClaims)
  if !ok || !parsedToken.Valid {
    return nil, fmt.Errorf("invalid or expired JWT token")
  }
  if claims.UserID == uuid.Nil {
    return nil, fmt.Errorf("invalid user id in token")
  }
  return claims, nil
}

func (as *authService) GetAccessTTL() time.Duration {
  return as.accessTTL
}
