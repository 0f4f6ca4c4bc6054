package completion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/taskautomator/backend/internal/metrics"
)

// OpenAIProvider calls an OpenAI-compatible chat completions API.

type OpenAIProvider struct {
	client *resty.Client
	model  string
}

// NewOpenAIProvider creates a provider against the given base URL, e.g.
// https://api.openai.com/v1 or any compatible endpoint.
func NewOpenAIProvider(baseURL, apiKey, model string) *OpenAIProvider {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(apiKey).
		SetTimeout(5 * time.Minute)

	return &OpenAIProvider{client: c, model: model}
}

// chatRequest / chatResponse structs for JSON binding

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete performs exactly one chat completion call and returns the reply
// text. No retry is attempted.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()

	body := chatRequest{
		Model:       p.model,
		Messages:    toChatMessages(req.Messages),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(&body).
		Post("/chat/completions")
	if err != nil {
		metrics.RecordCompletionCallLatency("openai", "error", time.Since(start))
		return "", fmt.Errorf("openai request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		metrics.RecordCompletionCallLatency("openai", fmt.Sprintf("%d", resp.StatusCode()), time.Since(start))
		return "", fmt.Errorf("openai status %d: %s", resp.StatusCode(), resp.String())
	}

	var out chatResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		metrics.RecordCompletionCallLatency("openai", "decode_error", time.Since(start))
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		metrics.RecordCompletionCallLatency("openai", "error", time.Since(start))
		return "", fmt.Errorf("openai error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		metrics.RecordCompletionCallLatency("openai", "empty", time.Since(start))
		return "", fmt.Errorf("openai returned no choices")
	}

	metrics.RecordCompletionCallLatency("openai", "success", time.Since(start))
	return out.Choices[0].Message.Content, nil
}

// HealthPing verifies the endpoint is reachable and the credential accepted.
func (p *OpenAIProvider) HealthPing(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("openai status %d", resp.StatusCode())
	}
	return nil
}

func toChatMessages(msgs []Message) []chatMessage {
	out := make([]chatMessage, len(msgs))
	for i, m := range msgs {
		out[i] = chatMessage{Role: m.Role, Content: m.Content}
	}
	return out
}
