package middleware

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

  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/requestdata"
  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type stubAuthService struct {
  claims *services.JWTClaims
}

func (s *stubAuthService) RegisterUser(ctx context.Context, user *types.User) (*types.User, string, error) {
  return nil, "", fmt.Errorf("not implemented")
}

func (s *stubAuthService) LoginUser(ctx context.Context, email, password string) (*types.User, string, error) {
  return nil, "", fmt.Errorf("not implemented")
}

func (s *stubAuthService) ParseToken(tokenString string) (*services.JWTClaims, error) {
  if tokenString == "good-token" && s.claims != nil {
    return s.claims, nil
  }
  return nil, fmt.Errorf("invalid or expired JWT token")
}

func (s *stubAuthService) GetAccessTTL() time.Duration {
  return 24 * time.Hour
}

func newProtectedRouter(t *testing.T, claims *services.JWTClaims) *gin.Engine {
  t.Helper()
  gin.SetMode(gin.TestMode)
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }
  am := NewAuthMiddleware(log, &stubAuthService{claims: claims})
  router := gin.New()
  router.GET("/probe", am.RequireAuth(), func(c *gin.Context) {
    rd := requestdata.GetRequestData(c.Request.Context())
    if rd == nil {
      c.JSON(http.StatusInternalServerError, gin.H{"error": "request data missing"})
      return
    }
    c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID, "email": rd.Email, "role": rd.Role})
  })
  return router
}

func TestRequireAuth_MissingTokenIs401(t *testing.T) {
  router := newProtectedRouter(t, nil)

  req := httptest.NewRequest(http.MethodGet, "/probe", nil)
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)

  if w.Code != http.StatusUnauthorized {
    t.Fatalf("expected 401 for absent credential, got %d", w.Code)
  }
}

func TestRequireAuth_InvalidTokenIs403(t *testing.T) {
  router := newProtectedRouter(t, nil)

  cases := []struct {
    name   string
    header string
  }{
    {"garbage token", "Bearer nonsense"},
    {"wrong scheme", "Basic good-token"},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      req := httptest.NewRequest(http.MethodGet, "/probe", nil)
      req.Header.Set("Authorization", tc.header)
      w := httptest.NewRecorder()
      router.ServeHTTP(w, req)

      want := http.StatusForbidden
      if tc.header == "Basic good-token" {
        // A non-bearer scheme reads as no credential at all.
        want = http.StatusUnauthorized
      }
      if w.Code != want {
        t.Fatalf("expected %d, got %d", want, w.Code)
      }
    })
  }
}

func TestRequireAuth_ValidTokenPopulatesRequestData(t *testing.T) {
  userID := uuid.New()
  claims := &services.JWTClaims{UserID: userID, Email: "asha@example.com", Role: "user"}
  router := newProtectedRouter(t, claims)

  req := httptest.NewRequest(http.MethodGet, "/probe", nil)
  req.Header.Set("Authorization", "Bearer good-token")
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)

  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
  }
  body := w.Body.String()
  for _, want := range []string{userID.String(), "asha@example.com", `"role":"user"`} {
    if !strings.Contains(body, want) {
      t.Fatalf("response missing %q: %s", want, body)
    }
  }
}
