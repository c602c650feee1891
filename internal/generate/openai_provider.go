package generate

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"

	log "github.com/sirupsen/logrus"

	"docnav/internal/models"
)

// OpenAIProvider implements CompletionService using the OpenAI chat API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI completion provider. A missing API
// key does not fail construction; the provider reports itself as disabled
// so the caller can fall back to templated answers.
func NewOpenAIProvider(apiKey, model, baseURL string) *OpenAIProvider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI provider will be disabled.")
		return &OpenAIProvider{model: model}
	}

	if model == "" {
		model = openai.GPT4oMini
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	client := openai.NewClientWithConfig(cfg)
	log.Infof("OpenAI completion provider initialized with model %s", model)

	return &OpenAIProvider{client: client, model: model}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return "openai" }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return p.model }

// Status returns the operational status of the provider.
func (p *OpenAIProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

func (p *OpenAIProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts Options) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("openai: %w", models.ErrGenerationDisabled)
	}

	reqMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case ChatMessageRoleSystem:
			role = openai.ChatMessageRoleSystem
		case ChatMessageRoleAssistant:
			role = openai.ChatMessageRoleAssistant
		}
		reqMessages = append(reqMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    reqMessages,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
		MaxTokens:   opts.MaxTokens,
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error generating completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("OpenAI API returned no completion choices")
	}

	return resp.Choices[0].Message.Content, nil
}

var _ CompletionService = (*OpenAIProvider)(nil)
