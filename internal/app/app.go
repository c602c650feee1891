// Package app wires the service components together from configuration.
package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"docnav/internal/cache"
	"docnav/internal/codesearch"
	"docnav/internal/config"
	"docnav/internal/generate"
	"docnav/internal/guard"
	"docnav/internal/responder"
)

type App struct {
	Config *config.Config

	Completion generate.CompletionService // nil when no provider is configured
	Responder  *responder.Responder
	Limiter    *guard.RateLimiter
	Guardrails *guard.Guardrails
	Cache      *cache.Cache
}

// NewApp initializes every component. With zero configuration the result
// runs fully offline: no completion provider, no live code search, answers
// come from the templates.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initCompletionService(); err != nil {
		return nil, err
	}

	var codeSearch responder.CodeSearcher
	if cfg.GitHub.Enabled {
		codeSearch = codesearch.NewClient(cfg.GitHub.Token, cfg.GitHub.RPS)
	}

	policy := responder.NewRetryPolicy(cfg.Generation.MaxRetries, cfg.Generation.BaseDelay)
	app.Responder = responder.New(app.Completion, codeSearch, policy, cfg.Generation.Timeout, generate.Options{
		Temperature: cfg.Generation.Temperature,
		TopP:        cfg.Generation.TopP,
		MaxTokens:   cfg.Generation.MaxTokens,
	})

	app.Limiter = guard.NewRateLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	app.Guardrails = guard.NewGuardrails(cfg.Guardrails.Enabled)
	app.Cache = cache.New(cfg.Cache.Enabled, cfg.Cache.TTL)

	log.Info("Application initialization complete.")
	return app, nil
}

func (a *App) initCompletionService() error {
	switch a.Config.Generation.Provider {
	case "openai":
		a.Completion = generate.NewOpenAIProvider(
			a.Config.Generation.OpenAIAPIKey,
			a.Config.Generation.Model,
			a.Config.Generation.BaseURL,
		)
	case "gemini":
		provider, err := generate.NewGeminiProvider(
			context.Background(),
			a.Config.Generation.GoogleAPIKey,
			a.Config.Generation.Model,
		)
		if err != nil {
			return fmt.Errorf("init gemini provider: %w", err)
		}
		a.Completion = provider
	case "":
		log.Info("No generation provider configured; running in templated mode.")
	default:
		return fmt.Errorf("unknown generation provider: %q", a.Config.Generation.Provider)
	}
	return nil
}

// Close releases background resources (the limiter sweep, provider
// clients).
func (a *App) Close() {
	if a.Limiter != nil {
		a.Limiter.Close()
	}
	if closer, ok := a.Completion.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
