package apihandlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"docnav/internal/app"
	"docnav/internal/cache"
	"docnav/internal/guard"
	"docnav/internal/models"
	"docnav/internal/responder"
	"docnav/internal/router"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// QueryRequest represents the JSON body for POST /query.
type QueryRequest struct {
	Query               string `json:"query"`
	NResults            int    `json:"n_results"`
	IncludeCodeExamples *bool  `json:"include_code_examples"`
}

// QueryHandler answers a documentation question: sanitize, validate,
// guardrail-check, classify, respond. Generation failures never surface
// here; the worst case is a templated answer.
func (h *APIHandler) QueryHandler(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	maxLen := h.App.Config.Query.MaxLength
	query := guard.Sanitize(req.Query, maxLen)
	if err := guard.ValidateQuery(query, maxLen); err != nil {
		BadRequest(c, err.Error())
		return
	}

	nResults := req.NResults
	if nResults <= 0 || nResults > 20 {
		nResults = h.App.Config.Query.DefaultResults
	}
	includeCode := true
	if req.IncludeCodeExamples != nil {
		includeCode = *req.IncludeCodeExamples
	}

	if ok, rejection := h.App.Guardrails.CheckInput(query); !ok {
		c.JSON(http.StatusOK, rejectionResponse(query, rejection))
		return
	}

	params := cache.Params{NResults: nResults, IncludeCode: includeCode}
	if cached, hit := h.App.Cache.Get(query, params); hit {
		log.Debugf("cache hit for query %q", truncateForLog(query))
		c.JSON(http.StatusOK, cached)
		return
	}

	classification := router.Classify(query)
	log.Infof("query routed to %s (confidence %.2f)", classification.Category, classification.Confidence)

	resp := h.App.Responder.Respond(c.Request.Context(), responder.Request{
		Query:               query,
		Classification:      classification,
		IncludeCodeExamples: includeCode,
		MaxResults:          nResults,
	})
	resp.Answer = h.App.Guardrails.CheckOutput(resp.Answer)

	h.App.Cache.Set(query, params, resp)
	c.JSON(http.StatusOK, resp)
}

// rejectionResponse wraps a guardrail rejection in the normal response
// shape so clients always get an answer.
func rejectionResponse(query, rejection string) models.QueryResponse {
	return models.QueryResponse{
		Query:           query,
		Answer:          rejection,
		Category:        models.CategoryGeneric,
		Confidence:      0.5,
		Sources:         []models.SourceReference{},
		CodeExamples:    []models.CodeExample{},
		MatchedKeywords: []string{},
		SuggestedTags:   []string{"General"},
		Generation:      models.ProviderMeta{Provider: "guardrails", Model: "static"},
	}
}

// StatusHandler serves GET /query with a static capability description.
func (h *APIHandler) StatusHandler(c *gin.Context) {
	provider := "template"
	model := "static"
	if h.App.Completion != nil {
		provider = h.App.Completion.Name()
		model = h.App.Completion.ModelName()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "doc-navigator",
		"provider": provider,
		"model":    model,
		"usage":    "POST /query with {\"query\": \"...\"}",
	})
}

// HealthHandler serves GET /health.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler serves GET /stats with cache and limiter counters.
func (h *APIHandler) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cache":          h.App.Cache.Snapshot(),
		"active_clients": h.App.Limiter.ActiveClients(),
	})
}

// CategoriesHandler lists the routing rules so clients can see which topic
// areas exist.
func (h *APIHandler) CategoriesHandler(c *gin.Context) {
	rules := router.Rules()
	out := make([]gin.H, 0, len(rules))
	for _, rule := range rules {
		out = append(out, gin.H{
			"category": rule.Category,
			"keywords": rule.Keywords,
			"tags":     rule.Tags,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}

// RateLimitMiddleware rejects clients over their fixed-window budget with
// 429 and a Retry-After hint.
func (h *APIHandler) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining := h.App.Limiter.Allow(c.ClientIP())
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		if !allowed {
			c.Header("Retry-After", fmt.Sprintf("%d", int(h.App.Limiter.Window().Seconds())))
			TooManyRequests(c, models.ErrRateLimited.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

func truncateForLog(s string) string {
	if len(s) > 100 {
		return s[:100] + "..."
	}
	return s
}
