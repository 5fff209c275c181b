package services

import (
  "strings"
  "testing"
  "time"

  "github.com/vyaparai/vyaparai-backend/internal/types"
)

func TestBuildRecommendationPrompt_IncludesStoredContext(t *testing.T) {
  rc := RecommendationContext{
    Industry:      "retail",
    BusinessSize:  "small",
    ExistingTools: []string{"whatsapp_chatbot", "lead_collector"},
    Interests:     []string{"appointment_booking"},
    RecentActions: []ActivityRef{
      {Type: "tool_created", Entity: "ai_tool", Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
    },
  }
  prompt := BuildRecommendationPrompt(rc)

  for _, want := range []string{
    "- Industry: retail",
    "- Business Size: small",
    "- Currently using tools: whatsapp_chatbot, lead_collector",
    "- Expressed interest in: appointment_booking",
    "tool_created ai_tool at 2026-08-01T12:00:00Z",
    `"recommendations" array`,
  } {
    if !strings.Contains(prompt, want) {
      t.Fatalf("prompt missing %q:\n%s", want, prompt)
    }
  }
  if strings.Contains(prompt, "- No tools currently in use") {
    t.Fatalf("fallback line present despite existing tools")
  }
}

func TestBuildRecommendationPrompt_OmitsAbsentFields(t *testing.T) {
  prompt := BuildRecommendationPrompt(RecommendationContext{})

  if strings.Contains(prompt, "- Industry:") {
    t.Fatalf("empty industry should be omitted, not zero-filled")
  }
  if strings.Contains(prompt, "- Business Size:") {
    t.Fatalf("empty business size should be omitted")
  }
  if strings.Contains(prompt, "- Expressed interest in:") {
    t.Fatalf("empty interests should be omitted")
  }
  if !strings.Contains(prompt, "- No tools currently in use") {
    t.Fatalf("missing tools fallback line")
  }
  if !strings.Contains(prompt, "- No recent activities recorded") {
    t.Fatalf("missing activities fallback line")
  }
}

func TestBuildRecommendationPrompt_ListsFullCatalog(t *testing.T) {
  prompt := BuildRecommendationPrompt(RecommendationContext{})

  if len(types.ToolCatalog) != 10 {
    t.Fatalf("expected 10 catalog entries, got %d", len(types.ToolCatalog))
  }
  for _, entry := range types.ToolCatalog {
    if !strings.Contains(prompt, entry.Name) {
      t.Fatalf("catalog entry %q missing from prompt", entry.Name)
    }
  }
  if !strings.Contains(prompt, "Provide 3 tool recommendations") {
    t.Fatalf("prompt does not ask for exactly 3 recommendations")
  }
}
