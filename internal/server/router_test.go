package server

import (
  "context"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/vyaparai/vyaparai-backend/internal/handlers"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/middleware"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type stubAuthService struct {
  userID uuid.UUID
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, string, error) {
  return nil, "", fmt.Errorf("not implemented")
}

func (s *stubAuthService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
  return nil, "", fmt.Errorf("not implemented")
}

func (s *stubAuthService) ParseToken(tokenString string) (*services.JWTClaims, error) {
  if tokenString == "good-token" {
    return &services.JWTClaims{UserID: s.userID, Email: "asha@example.com", Role: "user"}, nil
  }
  return nil, fmt.Errorf("invalid or expired JWT token")
}

func (s *stubAuthService) GetAccessTTL() time.Duration {
  return 24 * time.Hour
}

type stubRecService struct{}

func (s *stubRecService) Generate(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  return []*types.AiRecommendation{}, nil
}

func (s *stubRecService) List(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  return []*types.AiRecommendation{}, nil
}

func (s *stubRecService) MarkClicked(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error) {
  return nil, fmt.Errorf("not implemented")
}

func (s *stubRecService) MarkImplemented(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error) {
  return nil, fmt.Errorf("not implemented")
}

type stubPlanService struct{}

func (s *stubPlanService) List(ctx context.Context) ([]*types.Plan, error) {
  return []*types.Plan{{ID: uuid.New(), Name: "Starter", MonthlyPrice: 999}}, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }
  authService := &stubAuthService{userID: uuid.New()}
  return NewRouter(RouterConfig{
    AuthMiddleware:        middleware.NewAuthMiddleware(log, authService),
    AuthHandler:           handlers.NewAuthHandler(authService),
    UserHandler:           handlers.NewUserHandler(nil),
    ContactHandler:        handlers.NewContactHandler(nil),
    PlanHandler:           handlers.NewPlanHandler(&stubPlanService{}),
    ToolHandler:           handlers.NewToolHandler(nil),
    LeadHandler:           handlers.NewLeadHandler(nil),
    AppointmentHandler:    handlers.NewAppointmentHandler(nil),
    ChatLogHandler:        handlers.NewChatLogHandler(nil),
    PreferencesHandler:    handlers.NewPreferencesHandler(nil),
    ActivityHandler:       handlers.NewActivityHandler(nil),
    RecommendationHandler: handlers.NewRecommendationHandler(&stubRecService{}),
    SubscriptionHandler:   handlers.NewSubscriptionHandler(nil),
  })
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
  router := newTestRouter(t)

  for _, path := range []string{"/api/health", "/api/plans"} {
    req := httptest.NewRequest(http.MethodGet, path, nil)
    w := httptest.NewRecorder()
    router.ServeHTTP(w, req)
    if w.Code != http.StatusOK {
      t.Fatalf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
    }
  }
}

func TestRouter_ProtectedRouteDistinguishes401From403(t *testing.T) {
  router := newTestRouter(t)

  req := httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)
  if w.Code != http.StatusUnauthorized {
    t.Fatalf("absent token: expected 401, got %d", w.Code)
  }

  req = httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
  req.Header.Set("Authorization", "Bearer wrong-token")
  w = httptest.NewRecorder()
  router.ServeHTTP(w, req)
  if w.Code != http.StatusForbidden {
    t.Fatalf("invalid token: expected 403, got %d", w.Code)
  }

  req = httptest.NewRequest(http.MethodGet, "/api/recommendations", nil)
  req.Header.Set("Authorization", "Bearer good-token")
  w = httptest.NewRecorder()
  router.ServeHTTP(w, req)
  if w.Code != http.StatusOK {
    t.Fatalf("valid token: expected 200, got %d: %s", w.Code, w.Body.String())
  }
  if !strings.Contains(w.Body.String(), "recommendations") {
    t.Fatalf("unexpected body: %s", w.Body.String())
  }
}

func TestRouter_GenerateIsProtected(t *testing.T) {
  router := newTestRouter(t)

  req := httptest.NewRequest(http.MethodPost, "/api/recommendations/generate", nil)
  req.Header.Set("Authorization", "Bearer good-token")
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)
  if w.Code != http.StatusCreated {
    t.Fatalf("expected 201 from generate, got %d: %s", w.Code, w.Body.String())
  }
}
