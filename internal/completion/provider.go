package completion

import "context"

// Message roles understood by chat-style completion endpoints.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of a system/user prompt pair.
type Message struct {
	Role    string
	Content string
}

// Request carries one completion invocation. Zero Temperature/MaxTokens mean
// the provider's own defaults.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Provider invokes an external text-completion service once and returns the
// raw text of the reply. Implementations must not retry.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}
