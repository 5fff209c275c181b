package services

import (
  "bytes"
  "context"
  "encoding/json"
  "fmt"
  "io"
  "net/http"
  "os"
  "strconv"
  "strings"
  "time"

  "github.com/vyaparai/vyaparai-backend/internal/logger"
)

// AIClient is the outbound contract of the recommendation pipeline: one
// synchronous JSON-object completion per call. Failures are terminal for the
// request that triggered them; there is no retry layer.
type AIClient interface {
  GenerateJSON(ctx context.Context, system string, user string) (map[string]any, string, error)
  Model() string
}

type openAIClient struct {
  log         *logger.Logger
  baseURL     string
  apiKey      string
  model       string
  temperature float64
  httpClient  *http.Client
}

func NewOpenAIClient(log *logger.Logger) (AIClient, error) {
  apiKey := os.Getenv("OPENAI_API_KEY")
  if apiKey == "" {
    return nil, fmt.Errorf("missing OPENAI_API_KEY")
  }

  baseURL := os.Getenv("OPENAI_BASE_URL")
  if baseURL == "" {
    baseURL = "https://api.openai.com"
  }

  model := os.Getenv("OPENAI_MODEL")
  if model == "" {
    model = "gpt-4o"
  }

  timeoutSec := 60
  if v := os.Getenv("OPENAI_TIMEOUT_SECONDS"); v != "" {
    if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
      timeoutSec = parsed
    }
  }

  return &openAIClient{
    log:         log.With("service", "OpenAIClient"),
    baseURL:     baseURL,
    apiKey:      apiKey,
    model:       model,
    temperature: 0.5,
    httpClient:  &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
  }, nil
}

func (c *openAIClient) Model() string {
  return c.model
}

type chatCompletionRequest struct {
  Model    string `json:"model"`
  Messages []struct {
    Role    string `json:"role"`
    Content string `json:"content"`
  } `json:"messages"`
  ResponseFormat struct {
    Type string `json:"type"`
  } `json:"response_format"`
  Temperature float64 `json:"temperature"`
}

type chatCompletionResponse struct {
  Choices []struct {
    Message struct {
      Role    string `json:"role"`
      Content string `json:"content"`
    } `json:"message"`
  } `json:"choices"`
  Usage json.RawMessage `json:"usage,omitempty"`
}

// GenerateJSON asks the model for a single JSON object. The second return
// value is the raw text content, kept for the audit log.
func (c *openAIClient) GenerateJSON(ctx context.Context, system string, user string) (map[string]any, string, error) {
  req := chatCompletionRequest{
    Model:       c.model,
    Temperature: c.temperature,
  }
  req.Messages = []struct {
    Role    string `json:"role"`
    Content string `json:"content"`
  }{
    {Role: "system", Content: system},
    {Role: "user", Content: user},
  }
  req.ResponseFormat.Type = "json_object"

  var buf bytes.Buffer
  if err := json.NewEncoder(&buf).Encode(req); err != nil {
    return nil, "", err
  }

  httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
  if err != nil {
    return nil, "", err
  }
  httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
  httpReq.Header.Set("Content-Type", "application/json")

  resp, err := c.httpClient.Do(httpReq)
  if err != nil {
    return nil, "", err
  }
  raw, readErr := io.ReadAll(resp.Body)
  _ = resp.Body.Close()
  if readErr != nil {
    return nil, "", readErr
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, "", fmt.Errorf("openai http %d: %s", resp.StatusCode, string(raw))
  }

  var parsed chatCompletionResponse
  if err := json.Unmarshal(raw, &parsed); err != nil {
    return nil, "", fmt.Errorf("openai decode error: %w", err)
  }
  if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
    return nil, "", fmt.Errorf("no content in openai response")
  }

  content := parsed.Choices[0].Message.Content
  var obj map[string]any
  if err := json.Unmarshal([]byte(content), &obj); err != nil {
    return nil, content, fmt.Errorf("failed to parse model JSON: %w", err)
  }
  return obj, content, nil
}
