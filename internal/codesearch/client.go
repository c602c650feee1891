// Package codesearch finds code examples for a query by searching the
// official NVIDIA GitHub repositories. Failures never propagate past the
// responder; the static example tables remain the fallback.
package codesearch

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v56/github"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"docnav/internal/knowledge"
	"docnav/internal/models"
)

// Client wraps the GitHub code search API with a client-side politeness
// limiter. Unauthenticated clients work but hit much lower API quotas.
type Client struct {
	gh      *github.Client
	limiter *rate.Limiter
}

// NewClient creates a code search client. token may be empty.
func NewClient(token string, rps float64) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
		log.Info("GitHub token provided - using authenticated requests")
	} else {
		log.Info("No GitHub token - using unauthenticated requests (lower rate limits)")
	}
	if rps <= 0 {
		rps = 1.0
	}
	return &Client{
		gh:      gh,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// categoryScope narrows searches to the repository and language that fit a
// category best; categories without a scope search the top official repos.
var categoryScope = map[models.Category]struct {
	repo     string
	language string
}{
	models.CategoryCUDAGeneral:   {repo: "NVIDIA/cuda-samples", language: "cuda"},
	models.CategoryCUDAProfiling: {repo: "NVIDIA/cuda-samples", language: "cuda"},
	models.CategoryTensorRT:      {repo: "NVIDIA/TensorRT", language: "python"},
	models.CategoryNeMo:          {repo: "NVIDIA/NeMo", language: "python"},
	models.CategoryTriton:        {repo: "triton-inference-server/server", language: ""},
}

// Search runs a scoped code search and maps results to CodeExamples. A
// rate-limited or failed API call returns an empty slice and the error for
// logging; callers fall back to the static tables.
func (c *Client) Search(ctx context.Context, query string, cat models.Category, max int) ([]models.CodeExample, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := buildQuery(query, cat)
	if max <= 0 || max > 10 {
		max = 5 // GitHub API per_page limits
	}
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: max},
	}

	result, resp, err := c.gh.Search.Code(ctx, q, opts)
	if err != nil {
		if resp != nil && resp.StatusCode == 403 {
			log.Warn("GitHub API rate limit exceeded")
			return []models.CodeExample{}, nil
		}
		return nil, fmt.Errorf("github code search failed: %w", err)
	}

	examples := make([]models.CodeExample, 0, len(result.CodeResults))
	for _, item := range result.CodeResults {
		if len(examples) >= max {
			break
		}
		repoName := item.GetRepository().GetFullName()
		examples = append(examples, models.CodeExample{
			Name:        item.GetName(),
			Path:        item.GetPath(),
			Repo:        repoName,
			URL:         item.GetHTMLURL(),
			Description: fmt.Sprintf("Code example from %s", repoName),
		})
	}
	log.Debugf("github code search %q returned %d examples", q, len(examples))
	return examples, nil
}

func buildQuery(query string, cat models.Category) string {
	var b strings.Builder
	b.WriteString(query)

	if scope, ok := categoryScope[cat]; ok {
		fmt.Fprintf(&b, " repo:%s", scope.repo)
		if scope.language != "" {
			fmt.Fprintf(&b, " language:%s", scope.language)
		}
		return b.String()
	}

	for _, repo := range knowledge.OfficialRepos[:3] {
		fmt.Fprintf(&b, " repo:%s", repo)
	}
	return b.String()
}
