// Package responder assembles the final answer for a classified query. It
// prefers the configured generation provider and falls back to the static
// per-category templates; the caller always receives a non-empty answer.
package responder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"docnav/internal/generate"
	"docnav/internal/knowledge"
	"docnav/internal/models"
)

// CodeSearcher finds live code examples for a query. Implementations must
// degrade gracefully: an error here only means the static tables are used.
type CodeSearcher interface {
	Search(ctx context.Context, query string, cat models.Category, max int) ([]models.CodeExample, error)
}

// Request carries a sanitized query and its classification into Respond.
type Request struct {
	Query               string
	Classification      models.Classification
	IncludeCodeExamples bool
	MaxResults          int
}

// Responder builds QueryResponses. Completion and codeSearch are optional;
// with neither configured the responder is fully deterministic.
type Responder struct {
	completion generate.CompletionService
	codeSearch CodeSearcher
	policy     RetryPolicy
	timeout    time.Duration
	opts       generate.Options
}

// New creates a Responder. completion and codeSearch may be nil.
func New(completion generate.CompletionService, codeSearch CodeSearcher, policy RetryPolicy, timeout time.Duration, opts generate.Options) *Responder {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Responder{
		completion: completion,
		codeSearch: codeSearch,
		policy:     policy,
		timeout:    timeout,
		opts:       opts,
	}
}

// Respond assembles the full response for a classified query. Generation
// failures are absorbed: they are logged and the templated fallback is
// returned instead, never an error.
func (r *Responder) Respond(ctx context.Context, req Request) models.QueryResponse {
	cat := req.Classification.Category
	sources := knowledge.Sources(cat)
	if req.MaxResults > 0 && len(sources) > req.MaxResults {
		sources = sources[:req.MaxResults]
	}

	answer, meta := r.generateAnswer(ctx, cat, req.Query, sources)

	examples := []models.CodeExample{}
	if req.IncludeCodeExamples {
		examples = r.codeExamples(ctx, req.Query, cat)
	}

	matched := req.Classification.MatchedKeywords
	if matched == nil {
		matched = []string{}
	}

	return models.QueryResponse{
		RequestID:       uuid.New().String(),
		Query:           req.Query,
		Answer:          answer,
		Category:        cat,
		Confidence:      req.Classification.Confidence,
		Sources:         sources,
		CodeExamples:    examples,
		MatchedKeywords: matched,
		SuggestedTags:   req.Classification.Tags,
		Generation:      meta,
	}
}

// generateAnswer tries the generative path when a provider is configured
// and active, otherwise (or on exhaustion) renders the template.
func (r *Responder) generateAnswer(ctx context.Context, cat models.Category, query string, sources []models.SourceReference) (string, models.ProviderMeta) {
	if r.completion != nil && r.completion.Status() == generate.ProviderStatusActive {
		messages := buildMessages(cat, query, sources)
		answer, err := r.policy.Do(ctx, func(ctx context.Context) (string, error) {
			callCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			return r.completion.GenerateChatCompletion(callCtx, messages, r.opts)
		})
		if err == nil && strings.TrimSpace(answer) != "" {
			return answer, models.ProviderMeta{
				Provider: r.completion.Name(),
				Model:    r.completion.ModelName(),
			}
		}
		log.Warnf("generation via %s failed, using templated answer: %v", r.completion.Name(), err)
	}

	return templatedAnswer(cat, query, sources), models.ProviderMeta{
		Provider: "template",
		Model:    "static",
	}
}

// templatedAnswer renders the per-category template and appends the
// Sources section in lookup order.
func templatedAnswer(cat models.Category, query string, sources []models.SourceReference) string {
	var b strings.Builder
	b.WriteString(knowledge.RenderTemplate(cat, query))
	b.WriteString("\n\n**Sources:**\n")
	for i, src := range sources {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, src.Title, src.URL)
	}
	return b.String()
}

// codeExamples prefers live search results and falls back to the static
// tables, which also cover the offline case.
func (r *Responder) codeExamples(ctx context.Context, query string, cat models.Category) []models.CodeExample {
	const maxExamples = 2
	if r.codeSearch != nil {
		found, err := r.codeSearch.Search(ctx, query, cat, maxExamples)
		if err != nil {
			log.Warnf("live code search failed, using static examples: %v", err)
		} else if len(found) > 0 {
			return found
		}
	}
	return knowledge.Examples(cat)
}
