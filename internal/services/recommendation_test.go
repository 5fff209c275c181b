package services

import (
  "context"
  "errors"
  "net/http"
  "strings"
  "testing"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  gormlogger "gorm.io/gorm/logger"

  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

func newTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
    Logger: gormlogger.Default.LogMode(gormlogger.Silent),
  })
  if err != nil {
    t.Fatalf("failed to open sqlite: %v", err)
  }
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("failed to init logger: %v", err)
  }
  return log
}

type fakePrefsRepo struct {
  prefs *types.UserPreferences
}

func (f *fakePrefsRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserPreferences, error) {
  return f.prefs, nil
}

func (f *fakePrefsRepo) Upsert(ctx context.Context, tx *gorm.DB, prefs *types.UserPreferences) (*types.UserPreferences, error) {
  f.prefs = prefs
  return prefs, nil
}

type fakeToolRepo struct {
  tools []*types.AiTool
}

func (f *fakeToolRepo) Create(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error) {
  f.tools = append(f.tools, tool)
  return tool, nil
}

func (f *fakeToolRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiTool, error) {
  for _, tool := range f.tools {
    if tool.ID == id {
      return tool, nil
    }
  }
  return nil, nil
}

func (f *fakeToolRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiTool, error) {
  var out []*types.AiTool
  for _, tool := range f.tools {
    if tool.UserID == userID {
      out = append(out, tool)
    }
  }
  return out, nil
}

func (f *fakeToolRepo) Update(ctx context.Context, tx *gorm.DB, tool *types.AiTool) (*types.AiTool, error) {
  return tool, nil
}

func (f *fakeToolRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  return nil
}

type fakeActivityRepo struct {
  activities []*types.UserActivity
}

func (f *fakeActivityRepo) Create(ctx context.Context, tx *gorm.DB, activity *types.UserActivity) (*types.UserActivity, error) {
  f.activities = append(f.activities, activity)
  return activity, nil
}

func (f *fakeActivityRepo) GetRecentByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]*types.UserActivity, error) {
  var out []*types.UserActivity
  for _, a := range f.activities {
    if a.UserID == userID && a.CreatedAt.After(since) {
      out = append(out, a)
    }
  }
  return out, nil
}

type fakeRecRepo struct {
  store      map[uuid.UUID]*types.AiRecommendation
  created    []*types.AiRecommendation
  pruneKeep  int
  pruneCalls int
}

func newFakeRecRepo() *fakeRecRepo {
  return &fakeRecRepo{store: map[uuid.UUID]*types.AiRecommendation{}}
}

func (f *fakeRecRepo) CreateBatch(ctx context.Context, tx *gorm.DB, recs []*types.AiRecommendation) ([]*types.AiRecommendation, error) {
  for _, rec := range recs {
    f.store[rec.ID] = rec
  }
  f.created = append(f.created, recs...)
  return recs, nil
}

func (f *fakeRecRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.AiRecommendation, error) {
  return f.store[id], nil
}

func (f *fakeRecRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  var out []*types.AiRecommendation
  for _, rec := range f.store {
    if rec.UserID == userID {
      out = append(out, rec)
    }
  }
  return out, nil
}

func (f *fakeRecRepo) MarkClicked(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  if rec, ok := f.store[id]; ok {
    rec.Clicked = true
  }
  return nil
}

func (f *fakeRecRepo) MarkImplemented(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  if rec, ok := f.store[id]; ok {
    rec.Implemented = true
  }
  return nil
}

func (f *fakeRecRepo) PruneKeepNewest(ctx context.Context, tx *gorm.DB, userID uuid.UUID, keep int) error {
  f.pruneCalls++
  f.pruneKeep = keep
  return nil
}

type fakeCallLogRepo struct {
  entries []*types.AICallLog
}

func (f *fakeCallLogRepo) Create(ctx context.Context, tx *gorm.DB, logs []*types.AICallLog) ([]*types.AICallLog, error) {
  f.entries = append(f.entries, logs...)
  return logs, nil
}

type fakeAIClient struct {
  reply      map[string]any
  raw        string
  err        error
  lastSystem string
  lastUser   string
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system, user string) (map[string]any, string, error) {
  f.lastSystem = system
  f.lastUser = user
  return f.reply, f.raw, f.err
}

func (f *fakeAIClient) Model() string {
  return "test-model"
}

type recFixture struct {
  svc      RecommendationService
  prefs    *fakePrefsRepo
  tools    *fakeToolRepo
  activity *fakeActivityRepo
  recs     *fakeRecRepo
  callLogs *fakeCallLogRepo
  ai       *fakeAIClient
}

func newRecFixture(t *testing.T, ai *fakeAIClient) *recFixture {
  t.Helper()
  fx := &recFixture{
    prefs:    &fakePrefsRepo{},
    tools:    &fakeToolRepo{},
    activity: &fakeActivityRepo{},
    recs:     newFakeRecRepo(),
    callLogs: &fakeCallLogRepo{},
    ai:       ai,
  }
  fx.svc = NewRecommendationService(
    newTestDB(t),
    newTestLogger(t),
    fx.prefs,
    fx.tools,
    fx.activity,
    fx.recs,
    fx.callLogs,
    fx.ai,
  )
  return fx
}

func TestGenerate_NormalizesAliasKeysAndPersistsBatch(t *testing.T) {
  ai := &fakeAIClient{
    reply: map[string]any{
      "recommendations": []any{
        map[string]any{"toolId": float64(1), "toolName": "WhatsApp Chatbot", "toolType": "whatsapp_chatbot", "score": float64(95), "reason": "high message volume"},
        map[string]any{"id": float64(8), "name": "Lead Collector", "type": "Lead Collector", "relevance_score": float64(80), "reason": "capture walk-ins"},
        map[string]any{"tool_id": "9", "tool_name": "Appointment Booking", "tool_type": "appointment-booking", "score": "70", "explanation": "reduce no-shows"},
      },
    },
    raw: `{"recommendations":[]}`,
  }
  fx := newRecFixture(t, ai)
  userID := uuid.New()

  batch, err := fx.svc.Generate(context.Background(), userID)
  if err != nil {
    t.Fatalf("Generate returned error: %v", err)
  }
  if len(batch) != 3 {
    t.Fatalf("expected 3 recommendations, got %d", len(batch))
  }

  first := batch[0]
  if first.ToolType != types.ToolTypeWhatsAppChatbot || first.Score != 95 {
    t.Fatalf("unexpected first rec: type=%q score=%d", first.ToolType, first.Score)
  }
  if first.Reason != "high message volume" {
    t.Fatalf("unexpected reason: %q", first.Reason)
  }
  if len(first.Metadata) == 0 {
    t.Fatalf("raw model object should be preserved as metadata")
  }

  // Second item: free-form type string falls back to the catalog id.
  second := batch[1]
  if second.ToolType != types.ToolTypeLeadCollector {
    t.Fatalf("expected lead_collector from catalog id fallback, got %q", second.ToolType)
  }
  if second.Score != 80 {
    t.Fatalf("relevance_score alias not read: %d", second.Score)
  }

  // Third item: hyphenated type and string-typed numbers.
  third := batch[2]
  if third.ToolType != types.ToolTypeAppointmentBooking {
    t.Fatalf("hyphenated type not normalized: %q", third.ToolType)
  }
  if third.Score != 70 {
    t.Fatalf("string score not parsed: %d", third.Score)
  }
  if third.Reason != "reduce no-shows" {
    t.Fatalf("explanation alias not read: %q", third.Reason)
  }

  if fx.recs.pruneCalls != 1 || fx.recs.pruneKeep != 10 {
    t.Fatalf("expected one prune call keeping 10, got calls=%d keep=%d", fx.recs.pruneCalls, fx.recs.pruneKeep)
  }
  if len(fx.callLogs.entries) != 1 || !fx.callLogs.entries[0].Success {
    t.Fatalf("expected one successful call log entry")
  }
  for _, rec := range batch {
    if rec.UserID != userID {
      t.Fatalf("recommendation not attributed to caller")
    }
  }
}

func TestGenerate_PromptFallbacksForEmptyContext(t *testing.T) {
  ai := &fakeAIClient{reply: map[string]any{"recommendations": []any{}}}
  fx := newRecFixture(t, ai)

  if _, err := fx.svc.Generate(context.Background(), uuid.New()); err != nil {
    t.Fatalf("Generate returned error: %v", err)
  }
  if !strings.Contains(ai.lastUser, "- No tools currently in use") {
    t.Fatalf("prompt missing tools fallback:\n%s", ai.lastUser)
  }
  if !strings.Contains(ai.lastUser, "- No recent activities recorded") {
    t.Fatalf("prompt missing activities fallback:\n%s", ai.lastUser)
  }
  if ai.lastSystem != recommendationSystemPrompt {
    t.Fatalf("unexpected system prompt: %q", ai.lastSystem)
  }
}

func TestGenerate_EmbedsPreferencesAndDedupedTools(t *testing.T) {
  ai := &fakeAIClient{reply: map[string]any{"recommendations": []any{}}}
  fx := newRecFixture(t, ai)
  userID := uuid.New()
  fx.prefs.prefs = &types.UserPreferences{
    UserID:       userID,
    Industry:     "salon",
    BusinessSize: "micro",
    Interests:    datatypes.JSON(`["local_language_chat"]`),
  }
  fx.tools.tools = []*types.AiTool{
    {ID: uuid.New(), UserID: userID, ToolType: types.ToolTypeWhatsAppChatbot},
    {ID: uuid.New(), UserID: userID, ToolType: types.ToolTypeWhatsAppChatbot},
    {ID: uuid.New(), UserID: userID, ToolType: types.ToolTypeLeadCollector},
  }

  if _, err := fx.svc.Generate(context.Background(), userID); err != nil {
    t.Fatalf("Generate returned error: %v", err)
  }
  if !strings.Contains(ai.lastUser, "- Industry: salon") {
    t.Fatalf("preferences industry missing from prompt")
  }
  if !strings.Contains(ai.lastUser, "- Currently using tools: whatsapp_chatbot, lead_collector") {
    t.Fatalf("tool list should be deduplicated by type:\n%s", ai.lastUser)
  }
  if !strings.Contains(ai.lastUser, "- Expressed interest in: local_language_chat") {
    t.Fatalf("interests missing from prompt")
  }
}

func TestGenerate_ModelFailureIsAuditedAndReturned(t *testing.T) {
  ai := &fakeAIClient{err: errors.New("upstream timeout"), raw: ""}
  fx := newRecFixture(t, ai)

  _, err := fx.svc.Generate(context.Background(), uuid.New())
  if err == nil {
    t.Fatalf("expected error when model call fails")
  }
  if len(fx.callLogs.entries) != 1 {
    t.Fatalf("failed call should still be audited")
  }
  entry := fx.callLogs.entries[0]
  if entry.Success || entry.Error == "" {
    t.Fatalf("audit entry should record the failure: success=%v error=%q", entry.Success, entry.Error)
  }
  if len(fx.recs.created) != 0 {
    t.Fatalf("nothing should be persisted on model failure")
  }
}

func TestGenerate_MissingRecommendationsArray(t *testing.T) {
  ai := &fakeAIClient{reply: map[string]any{"tools": []any{}}}
  fx := newRecFixture(t, ai)

  _, err := fx.svc.Generate(context.Background(), uuid.New())
  if err == nil {
    t.Fatalf("expected error when reply lacks recommendations array")
  }
  if len(fx.recs.created) != 0 {
    t.Fatalf("nothing should be persisted for a malformed reply")
  }
}

func TestMarkClicked_OwnershipAndLatch(t *testing.T) {
  fx := newRecFixture(t, &fakeAIClient{})
  owner := uuid.New()
  stranger := uuid.New()
  rec := &types.AiRecommendation{ID: uuid.New(), UserID: owner, ToolType: types.ToolTypeWhatsAppChatbot}
  fx.recs.store[rec.ID] = rec

  if _, err := fx.svc.MarkClicked(context.Background(), stranger, rec.ID); err == nil {
    t.Fatalf("expected forbidden error for foreign recommendation")
  } else {
    var ae *apierr.Error
    if !errors.As(err, &ae) || ae.Status != http.StatusForbidden {
      t.Fatalf("expected 403 apierr, got %v", err)
    }
  }

  if _, err := fx.svc.MarkClicked(context.Background(), owner, uuid.New()); err == nil {
    t.Fatalf("expected not found error for unknown id")
  } else {
    var ae *apierr.Error
    if !errors.As(err, &ae) || ae.Status != http.StatusNotFound {
      t.Fatalf("expected 404 apierr, got %v", err)
    }
  }

  updated, err := fx.svc.MarkClicked(context.Background(), owner, rec.ID)
  if err != nil {
    t.Fatalf("MarkClicked returned error: %v", err)
  }
  if !updated.Clicked {
    t.Fatalf("clicked flag not set")
  }

  // A second click is idempotent.
  again, err := fx.svc.MarkClicked(context.Background(), owner, rec.ID)
  if err != nil {
    t.Fatalf("repeat MarkClicked returned error: %v", err)
  }
  if !again.Clicked {
    t.Fatalf("clicked flag should stay latched")
  }
}

func TestNormalizeRecommendation_CatalogIDFallback(t *testing.T) {
  cases := []struct {
    name     string
    obj      map[string]any
    wantType types.ToolType
    wantName string
  }{
    {
      name:     "valid type wins over id",
      obj:      map[string]any{"toolId": float64(3), "toolType": "whatsapp_chatbot", "toolName": "x"},
      wantType: types.ToolTypeWhatsAppChatbot,
      wantName: "x",
    },
    {
      name:     "invalid type falls back to catalog id",
      obj:      map[string]any{"toolId": float64(3), "toolType": "social media"},
      wantType: types.ToolTypeSocialMediaWriter,
      wantName: types.ToolCatalog[2].Name,
    },
    {
      name:     "out of range id keeps the raw type",
      obj:      map[string]any{"toolId": float64(42), "toolType": "mystery"},
      wantType: types.ToolType("mystery"),
      wantName: "",
    },
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got := normalizeRecommendation(tc.obj)
      if got.ToolType != tc.wantType {
        t.Fatalf("tool type: got %q want %q", got.ToolType, tc.wantType)
      }
      if got.ToolName != tc.wantName {
        t.Fatalf("tool name: got %q want %q", got.ToolName, tc.wantName)
      }
    })
  }
}
