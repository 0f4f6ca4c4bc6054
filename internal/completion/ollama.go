package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/taskautomator/backend/internal/metrics"
)

// OllamaProvider calls a local Ollama chat API.

type OllamaProvider struct {
	client *resty.Client
	model  string
}

// NewOllamaProvider creates a provider against the given Ollama base URL; an
// empty URL falls back to http://localhost:11434.
func NewOllamaProvider(baseURL, model string) *OllamaProvider {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}

	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(5 * time.Minute)

	return &OllamaProvider{client: c, model: model}
}

type ollamaChatRequest struct {
	Model    string         `json:"model"`
	Messages []chatMessage  `json:"messages"`
	Stream   bool           `json:"stream"`
	Options  map[string]any `json:"options,omitempty"`
}

type ollamaChatResponse struct {
	Message chatMessage `json:"message"`
	Error   string      `json:"error"`
}

// Complete performs exactly one chat call against /api/chat.
func (p *OllamaProvider) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	opts := map[string]any{}
	if req.Temperature != 0 {
		opts["temperature"] = req.Temperature
	}
	if req.MaxTokens != 0 {
		opts["num_predict"] = req.MaxTokens
	}

	body := ollamaChatRequest{
		Model:    p.model,
		Messages: toChatMessages(req.Messages),
		Stream:   false,
		Options:  opts,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/api/chat")
	if err != nil {
		metrics.RecordCompletionCallLatency("ollama", "error", time.Since(start))
		return "", fmt.Errorf("ollama request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.RecordCompletionCallLatency("ollama", fmt.Sprintf("%d", resp.StatusCode()), time.Since(start))
		return "", fmt.Errorf("ollama status %d: %s", resp.StatusCode(), resp.String())
	}

	var out ollamaChatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		metrics.RecordCompletionCallLatency("ollama", "decode_error", time.Since(start))
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		metrics.RecordCompletionCallLatency("ollama", "error", time.Since(start))
		return "", fmt.Errorf("ollama error: %s", out.Error)
	}

	metrics.RecordCompletionCallLatency("ollama", "success", time.Since(start))
	return out.Message.Content, nil
}

// HealthPing verifies that the configured model appears in /api/tags.
func (p *OllamaProvider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/api/tags")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("ollama status %d", resp.StatusCode())
	}
	var data struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return err
	}
	target := strings.Split(p.model, ":")[0]
	for _, m := range data.Models {
		if strings.Split(m.Name, ":")[0] == target {
			return nil
		}
	}
	return fmt.Errorf("model %s not found in tag list", p.model)
}
