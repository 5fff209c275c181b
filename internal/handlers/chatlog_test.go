package handlers

import (
  "context"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/vyaparai/vyaparai-backend/internal/services"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

type stubChatLogService struct {
  logs       []*types.ChatLog
  listCaller uuid.UUID
}

func (s *stubChatLogService) Append(ctx context.Context, userID uuid.UUID, input services.ChatLogInput) (*types.ChatLog, error) {
  entry := &types.ChatLog{ID: uuid.New(), UserID: userID, ToolID: input.ToolID, Role: input.Role, Message: input.Message}
  s.logs = append(s.logs, entry)
  return entry, nil
}

func (s *stubChatLogService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.ChatLog, error) {
  s.listCaller = userID
  return s.logs, nil
}

func TestChatLogHandler_ListReturnsCallerHistory(t *testing.T) {
  gin.SetMode(gin.TestMode)
  userID := uuid.New()
  svc := &stubChatLogService{
    logs: []*types.ChatLog{
      {ID: uuid.New(), UserID: userID, Role: "user", Message: "namaste"},
    },
  }
  ch := NewChatLogHandler(svc)
  router := gin.New()
  router.GET("/chatlogs", asCaller(userID), ch.List)

  req := httptest.NewRequest(http.MethodGet, "/chatlogs", nil)
  w := httptest.NewRecorder()
  router.ServeHTTP(w, req)

  if w.Code != http.StatusOK {
    t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
  }
  if svc.listCaller != userID {
    t.Fatalf("service called with %s, want the authenticated user", svc.listCaller)
  }
  if !strings.Contains(w.Body.String(), "namaste") {
    t.Fatalf("response missing chat entry: %s", w.Body.String())
  }
}
