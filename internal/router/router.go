// Package router assigns free-text queries to topic categories using a
// static keyword table. Classification is deterministic and never fails;
// a query that matches nothing routes to the generic category.
package router

import (
	"strings"

	"docnav/internal/models"
)

const (
	baseConfidence    = 0.5
	perKeywordBoost   = 0.15
	confidenceCeiling = 0.9
)

// Classify routes a query to the first rule with at least one keyword hit.
// Matching is case-insensitive substring matching; matched keywords are
// reported in the rule's declaration order. Confidence is
// min(0.9, 0.5 + 0.15 per matched keyword).
func Classify(query string) models.Classification {
	lowered := strings.ToLower(query)

	for _, rule := range rules {
		var matched []string
		for _, kw := range rule.Keywords {
			if strings.Contains(lowered, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		return models.Classification{
			Category:        rule.Category,
			Confidence:      confidence(len(matched)),
			MatchedKeywords: matched,
			Tags:            rule.Tags,
		}
	}

	return models.Classification{
		Category:        models.CategoryGeneric,
		Confidence:      baseConfidence,
		MatchedKeywords: []string{},
		Tags:            genericTags,
	}
}

func confidence(matches int) float64 {
	c := baseConfidence + perKeywordBoost*float64(matches)
	if c > confidenceCeiling {
		return confidenceCeiling
	}
	return c
}
