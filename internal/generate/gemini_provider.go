package generate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"docnav/internal/models"
)

// GeminiProvider implements CompletionService using the Google Gemini API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a new Gemini completion provider. As with the
// OpenAI provider, a missing API key yields a disabled provider rather than
// an error.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY") // Fallback to env var
	}
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini provider will be disabled.")
		return &GeminiProvider{model: model}, nil
	}

	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	log.Infof("Gemini completion provider initialized with model %s", model)

	return &GeminiProvider{client: client, model: model}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return "gemini" }

// ModelName returns the specific model identifier.
func (p *GeminiProvider) ModelName() string { return p.model }

// Status returns the operational status of the provider.
func (p *GeminiProvider) Status() ProviderStatus {
	if p.client == nil {
		return ProviderStatusDisabled
	}
	return ProviderStatusActive
}

func (p *GeminiProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts Options) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini: %w", models.ErrGenerationDisabled)
	}

	gm := p.client.GenerativeModel(p.model)
	gm.SetTemperature(opts.Temperature)
	gm.SetTopP(opts.TopP)
	if opts.MaxTokens > 0 {
		gm.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	// Gemini takes the system instruction separately; user/assistant turns
	// are flattened into a single prompt for this one-shot use case.
	var parts []genai.Part
	for _, m := range messages {
		if m.Role == ChatMessageRoleSystem {
			gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
			continue
		}
		parts = append(parts, genai.Text(m.Content))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no user content to send to Gemini")
	}

	resp, err := gm.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("Gemini API error generating completion: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("Gemini API returned no candidates")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("Gemini API returned no text parts")
	}
	return b.String(), nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

var _ CompletionService = (*GeminiProvider)(nil)
