package analysis

import (
	"sort"
	"strings"
	"time"
)

// BuildContext derives running conversation statistics from the visitor's
// previous answers. Like Analyze it is pure: recomputed every turn from the
// transcript, never stored.
func BuildContext(answers []string, lastPersuasion *time.Time) *Context {
	ctx := &Context{
		PreviousAnswers:       answers,
		LastPersuasionAttempt: lastPersuasion,
	}

	topics := map[string]struct{}{}
	for _, answer := range answers {
		normalized := strings.ToLower(strings.TrimSpace(answer))
		if normalized == "" {
			continue
		}

		if DetectObjection(normalized) != ObjectionNone {
			ctx.ObjectionCount++
		}

		tokens := tokenize(normalized)
		positive := matchScore(normalized, tokens, positiveKeywords)
		negative := matchScore(normalized, tokens, negativeKeywords)
		uncertain := matchScore(normalized, tokens, uncertainKeywords)
		if positive > negative && positive > uncertain {
			ctx.PositiveResponses++
		}

		ctx.BuyingSignalsDetected += len(DetectBuyingSignals(normalized))

		for _, rule := range serviceSuggestionRules {
			if containsAny(normalized, rule.patterns) {
				topics[rule.topic] = struct{}{}
			}
		}
	}

	for topic := range topics {
		ctx.TopicsDiscussed = append(ctx.TopicsDiscussed, topic)
	}
	// Deterministic order for callers that render or log topics.
	sort.Strings(ctx.TopicsDiscussed)

	return ctx
}
