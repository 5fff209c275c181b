package services

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "strconv"
  "strings"
  "time"

  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vyaparai/vyaparai-backend/internal/apierr"
  "github.com/vyaparai/vyaparai-backend/internal/logger"
  "github.com/vyaparai/vyaparai-backend/internal/repos"
  "github.com/vyaparai/vyaparai-backend/internal/types"
)

const (
  // recommendationRetention bounds the per-user history; older rows are
  // pruned in the same transaction that persists a new batch.
  recommendationRetention = 10
  // activityWindow selects the recent actions embedded in the prompt.
  activityWindow = 30 * 24 * time.Hour
)

type RecommendationService interface {
  Generate(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error)
  List(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error)
  MarkClicked(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error)
  MarkImplemented(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error)
}

type recommendationService struct {
  db            *gorm.DB
  log           *logger.Logger
  prefsRepo     repos.PreferencesRepo
  toolRepo      repos.AiToolRepo
  activityRepo  repos.ActivityRepo
  recRepo       repos.RecommendationRepo
  aiCallLogRepo repos.AICallLogRepo
  aiClient      AIClient
}

func NewRecommendationService(
  db *gorm.DB,
  log *logger.Logger,
  prefsRepo repos.PreferencesRepo,
  toolRepo repos.AiToolRepo,
  activityRepo repos.ActivityRepo,
  recRepo repos.RecommendationRepo,
  aiCallLogRepo repos.AICallLogRepo,
  aiClient AIClient,
) RecommendationService {
  serviceLog := log.With("service", "RecommendationService")
  return &recommendationService{
    db:            db,
    log:           serviceLog,
    prefsRepo:     prefsRepo,
    toolRepo:      toolRepo,
    activityRepo:  activityRepo,
    recRepo:       recRepo,
    aiCallLogRepo: aiCallLogRepo,
    aiClient:      aiClient,
  }
}

// Generate runs the full pipeline: gather stored user context, build the
// prompt, call the model, normalize its reply, persist the batch and prune
// history beyond the retention count. The returned slice is the new batch,
// not the post-retention surviving set.
func (rs *recommendationService) Generate(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  rc, err := rs.gatherContext(ctx, userID)
  if err != nil {
    return nil, err
  }

  prompt := BuildRecommendationPrompt(rc)
  reply, rawText, callErr := rs.aiClient.GenerateJSON(ctx, recommendationSystemPrompt, prompt)
  rs.auditCall(ctx, userID, prompt, rawText, callErr)
  if callErr != nil {
    return nil, fmt.Errorf("Failed to generate recommendations: %w", callErr)
  }

  rawRecs, ok := reply["recommendations"].([]any)
  if !ok {
    return nil, fmt.Errorf("model reply is missing the recommendations array")
  }

  now := time.Now().UTC()
  batch := make([]*types.AiRecommendation, 0, len(rawRecs))
  for _, item := range rawRecs {
    obj, ok := item.(map[string]any)
    if !ok {
      continue
    }
    normalized := normalizeRecommendation(obj)
    raw, _ := json.Marshal(obj)
    batch = append(batch, &types.AiRecommendation{
      ID:        uuid.New(),
      UserID:    userID,
      ToolType:  normalized.ToolType,
      ToolName:  normalized.ToolName,
      Score:     normalized.Score,
      Reason:    normalized.Reason,
      Metadata:  datatypes.JSON(raw),
      CreatedAt: now,
      UpdatedAt: now,
    })
  }

  err = rs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := rs.recRepo.CreateBatch(ctx, tx, batch); cErr != nil {
      return fmt.Errorf("Failed to persist recommendation batch: %w", cErr)
    }
    if pErr := rs.recRepo.PruneKeepNewest(ctx, tx, userID, recommendationRetention); pErr != nil {
      return fmt.Errorf("Failed to prune recommendation history: %w", pErr)
    }
    return nil
  })
  if err != nil {
    return nil, err
  }
  return batch, nil
}

func (rs *recommendationService) gatherContext(ctx context.Context, userID uuid.UUID) (RecommendationContext, error) {
  var rc RecommendationContext

  prefs, err := rs.prefsRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return rc, fmt.Errorf("Failed to fetch preferences: %w", err)
  }
  if prefs != nil {
    rc.Industry = prefs.Industry
    rc.BusinessSize = prefs.BusinessSize
    rc.Interests = decodeStringArray(prefs.Interests)
  }

  tools, err := rs.toolRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return rc, fmt.Errorf("Failed to fetch tools: %w", err)
  }
  seen := map[types.ToolType]bool{}
  for _, tool := range tools {
    if !seen[tool.ToolType] {
      seen[tool.ToolType] = true
      rc.ExistingTools = append(rc.ExistingTools, string(tool.ToolType))
    }
  }

  activities, err := rs.activityRepo.GetRecentByUserID(ctx, nil, userID, time.Now().Add(-activityWindow))
  if err != nil {
    return rc, fmt.Errorf("Failed to fetch recent activity: %w", err)
  }
  for _, activity := range activities {
    rc.RecentActions = append(rc.RecentActions, ActivityRef{
      Type:      activity.ActivityType,
      Entity:    activity.EntityType,
      Timestamp: activity.CreatedAt,
    })
  }
  return rc, nil
}

// auditCall records the model round trip, success or failure. Audit failures
// are logged and swallowed; they must not fail the generation request.
func (rs *recommendationService) auditCall(ctx context.Context, userID uuid.UUID, prompt, response string, callErr error) {
  if rs.aiCallLogRepo == nil {
    return
  }
  entry := &types.AICallLog{
    ID:       uuid.New(),
    UserID:   &userID,
    CallType: "tool_recommendations",
    Model:    rs.aiClient.Model(),
    Prompt:   prompt,
    Response: response,
    Success:  callErr == nil,
  }
  if callErr != nil {
    entry.Error = callErr.Error()
  }
  if _, err := rs.aiCallLogRepo.Create(ctx, nil, []*types.AICallLog{entry}); err != nil {
    rs.log.Warn("Failed to write AI call log", "error", err)
  }
}

func (rs *recommendationService) List(ctx context.Context, userID uuid.UUID) ([]*types.AiRecommendation, error) {
  recs, err := rs.recRepo.GetByUserID(ctx, nil, userID)
  if err != nil {
    return nil, fmt.Errorf("Failed to list recommendations: %w", err)
  }
  return recs, nil
}

func (rs *recommendationService) MarkClicked(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error) {
  return rs.markFlag(ctx, userID, recommendationID, rs.recRepo.MarkClicked)
}

func (rs *recommendationService) MarkImplemented(ctx context.Context, userID, recommendationID uuid.UUID) (*types.AiRecommendation, error) {
  return rs.markFlag(ctx, userID, recommendationID, rs.recRepo.MarkImplemented)
}

func (rs *recommendationService) markFlag(ctx context.Context, userID, recommendationID uuid.UUID, mark func(context.Context, *gorm.DB, uuid.UUID) error) (*types.AiRecommendation, error) {
  rec, err := rs.recRepo.GetByID(ctx, nil, recommendationID)
  if err != nil {
    return nil, fmt.Errorf("Failed to fetch recommendation: %w", err)
  }
  if rec == nil {
    return nil, apierr.New(http.StatusNotFound, "recommendation_not_found", fmt.Errorf("recommendation not found"))
  }
  if rec.UserID != userID {
    return nil, apierr.New(http.StatusForbidden, "forbidden", fmt.Errorf("recommendation belongs to another user"))
  }
  if err := mark(ctx, nil, recommendationID); err != nil {
    return nil, fmt.Errorf("Failed to update recommendation: %w", err)
  }
  return rs.recRepo.GetByID(ctx, nil, recommendationID)
}

// normalizedRecommendation is the canonical internal shape one raw model
// suggestion degrades into.
type normalizedRecommendation struct {
  ToolID   int
  ToolName string
  ToolType types.ToolType
  Score    int
  Reason   string
}

// normalizeRecommendation reads each field from any of its historically-used
// key names and defaults missing fields per-field rather than rejecting the
// batch. The raw object is preserved separately as metadata.
func normalizeRecommendation(obj map[string]any) normalizedRecommendation {
  var n normalizedRecommendation
  n.ToolID = asInt(firstValue(obj, "toolId", "id", "tool_id"))
  n.ToolName = asString(firstValue(obj, "toolName", "name", "tool_name"))
  n.ToolType = types.ToolType(normalizeTypeString(asString(firstValue(obj, "toolType", "type", "tool_type", "category"))))
  n.Score = asInt(firstValue(obj, "score", "relevance_score", "relevanceScore"))
  n.Reason = asString(firstValue(obj, "reason", "explanation"))

  // A numeric catalog id can stand in for an absent or free-form type.
  if !types.IsValidToolType(n.ToolType) && n.ToolID >= 1 && n.ToolID <= len(types.ToolCatalog) {
    entry := types.ToolCatalog[n.ToolID-1]
    n.ToolType = entry.Type
    if n.ToolName == "" {
      n.ToolName = entry.Name
    }
  }
  return n
}

func firstValue(obj map[string]any, keys ...string) any {
  for _, key := range keys {
    if v, ok := obj[key]; ok && v != nil {
      return v
    }
  }
  return nil
}

func asString(v any) string {
  if v == nil {
    return ""
  }
  switch s := v.(type) {
  case string:
    return strings.TrimSpace(s)
  case float64:
    return strconv.FormatFloat(s, 'f', -1, 64)
  default:
    return ""
  }
}

func asInt(v any) int {
  switch n := v.(type) {
  case float64:
    return int(n)
  case int:
    return n
  case json.Number:
    if i, err := n.Int64(); err == nil {
      return int(i)
    }
  case string:
    if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
      return i
    }
    if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
      return int(f)
    }
  }
  return 0
}

func normalizeTypeString(s string) string {
  s = strings.ToLower(strings.TrimSpace(s))
  s = strings.ReplaceAll(s, " ", "_")
  s = strings.ReplaceAll(s, "-", "_")
  return s
}

func decodeStringArray(raw datatypes.JSON) []string {
  if len(raw) == 0 {
    return nil
  }
  var out []string
  if err := json.Unmarshal(raw, &out); err != nil {
    return nil
  }
  return out
}
