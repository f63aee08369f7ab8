// Package vision infers a task's connection to the user's higher-purpose
// narrative from its title and description.
//
// This is a deterministic rule-table lookup, not machine learning: each
// personal value carries a fixed keyword list, and a task matches a value
// when any keyword appears in its text. The same input always produces the
// same connection.
package vision

import (
	"strings"

	"github.com/compasshq/compass/internal/domain"
)

// maxImpact caps the inferred impact score contribution.
const maxImpact = 10

// valueRule maps one personal value to its trigger keywords. Rules are an
// ordered slice so matching and output order are deterministic.
type valueRule struct {
	value     string
	relevance string
	keywords  []string
}

var valueRules = []valueRule{
	{
		value:     "health",
		relevance: "keeps your body able to carry everything else",
		keywords:  []string{"run", "walk", "gym", "exercise", "workout", "sleep", "meditat", "stretch", "cook", "meal"},
	},
	{
		value:     "growth",
		relevance: "compounds into who you are becoming",
		keywords:  []string{"learn", "read", "study", "course", "practice", "write", "journal", "skill"},
	},
	{
		value:     "relationships",
		relevance: "invests in the people who matter",
		keywords:  []string{"family", "friend", "call", "visit", "partner", "dinner with", "catch up"},
	},
	{
		value:     "career",
		relevance: "moves your professional story forward",
		keywords:  []string{"work", "project", "career", "interview", "portfolio", "resume", "meeting", "present"},
	},
	{
		value:     "financial",
		relevance: "builds the freedom to choose",
		keywords:  []string{"budget", "save", "invest", "money", "expense", "tax", "bill"},
	},
}

// Infer derives a vision connection from the task's free text. It returns
// nil when no value keyword matches, leaving the task unconnected.
func Infer(title, description string) *domain.VisionConnection {
	text := strings.ToLower(title + " " + description)

	var values []string
	relevance := ""
	for _, rule := range valueRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				values = append(values, rule.value)
				if relevance == "" {
					relevance = rule.relevance
				}
				break
			}
		}
	}
	if len(values) == 0 {
		return nil
	}

	// Two points per matched value on top of a base of two, capped.
	impact := 2 + 2*len(values)
	if impact > maxImpact {
		impact = maxImpact
	}

	return &domain.VisionConnection{
		CoreVisionRelevance: "This task " + relevance + ".",
		ValueAlignment:      values,
		ImpactScore:         impact,
		WhyStatement:        "It supports your " + joinValues(values) + " values.",
	}
}

func joinValues(values []string) string {
	switch len(values) {
	case 1:
		return values[0]
	case 2:
		return values[0] + " and " + values[1]
	default:
		return strings.Join(values[:len(values)-1], ", ") + ", and " + values[len(values)-1]
	}
}
