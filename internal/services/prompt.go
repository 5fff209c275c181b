package services

import (
  "fmt"
  "strings"
  "time"

  "github.com/vyaparai/vyaparai-backend/internal/types"
)

const recommendationSystemPrompt = "You are a specialized AI business tool recommendation system for Indian small businesses."

// ActivityRef is the slice of a user activity row the prompt cares about.
type ActivityRef struct {
  Type      string
  Entity    string
  Timestamp time.Time
}

// RecommendationContext carries whatever user state was present; absent
// fields are omitted from the prompt, not zero-filled.
type RecommendationContext struct {
  Industry      string
  BusinessSize  string
  ExistingTools []string
  Interests     []string
  RecentActions []ActivityRef
}

// BuildRecommendationPrompt assembles the fixed template around the stored
// user context and the ten-entry tool catalog, asking for exactly three
// recommendations inside a JSON object.
func BuildRecommendationPrompt(rc RecommendationContext) string {
  var b strings.Builder
  b.WriteString("Generate personalized AI tool recommendations for a user with the following context:\n")
  if rc.Industry != "" {
    fmt.Fprintf(&b, "- Industry: %s\n", rc.Industry)
  }
  if rc.BusinessSize != "" {
    fmt.Fprintf(&b, "- Business Size: %s\n", rc.BusinessSize)
  }
  if len(rc.ExistingTools) > 0 {
    fmt.Fprintf(&b, "- Currently using tools: %s\n", strings.Join(rc.ExistingTools, ", "))
  } else {
    b.WriteString("- No tools currently in use\n")
  }
  if len(rc.Interests) > 0 {
    fmt.Fprintf(&b, "- Expressed interest in: %s\n", strings.Join(rc.Interests, ", "))
  }
  if len(rc.RecentActions) > 0 {
    actions := make([]string, 0, len(rc.RecentActions))
    for _, a := range rc.RecentActions {
      actions = append(actions, fmt.Sprintf("%s %s at %s", a.Type, a.Entity, a.Timestamp.UTC().Format(time.RFC3339)))
    }
    fmt.Fprintf(&b, "- Recent activities: %s\n", strings.Join(actions, ", "))
  } else {
    b.WriteString("- No recent activities recorded\n")
  }

  b.WriteString("\nAvailable AI tools are:\n")
  for _, entry := range types.ToolCatalog {
    fmt.Fprintf(&b, "%d. %s - %s\n", entry.ID, entry.Name, entry.Description)
  }

  b.WriteString(`
Provide 3 tool recommendations with the following information for each:
- Tool ID (number from 1-10)
- Tool Name (from the list above)
- Tool Type (category)
- Relevance Score (1-100)
- Reason (brief explanation of why this tool is recommended)

Format the response as a valid JSON object with a "recommendations" array.
`)
  return b.String()
}
