// Package generate wraps the external text-generation providers behind a
// single interface. Providers are black boxes: given messages they return a
// completion or an error; everything else (retry, fallback) is the caller's
// concern.
package generate

import (
	"context"
)

// ChatMessageRole defines the role of the message sender.
type ChatMessageRole string

const (
	ChatMessageRoleSystem    ChatMessageRole = "system"
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant"
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// Options are the sampling parameters forwarded to the provider.
type Options struct {
	Temperature float32
	TopP        float32
	MaxTokens   int
}

// ProviderStatus reports whether a provider can serve requests.
type ProviderStatus string

const (
	ProviderStatusActive   ProviderStatus = "active"
	ProviderStatusDisabled ProviderStatus = "disabled"
)

// CompletionService is the interface for generating chat responses.
// Implementations must honour context cancellation so callers can enforce
// their own timeouts.
type CompletionService interface {
	GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts Options) (string, error)
	Status() ProviderStatus
	Name() string
	ModelName() string
}
