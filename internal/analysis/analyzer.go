package analysis

import (
	"strings"
	"unicode/utf8"
)

const tokenCutset = ".,!?;:()\"'«»—-"

// Analyze classifies one free-text reply. It is a pure function: the same
// (text, ctx) pair always yields the same result, and ctx may be nil.
func Analyze(text string, ctx *Context) Analysis {
	normalized := strings.ToLower(strings.TrimSpace(text))
	tokens := tokenize(normalized)

	positive := matchScore(normalized, tokens, positiveKeywords)
	negative := matchScore(normalized, tokens, negativeKeywords)
	uncertain := matchScore(normalized, tokens, uncertainKeywords)
	if ctx != nil {
		// Earlier positive replies carry momentum into this turn.
		positive += 0.5 * float64(ctx.PositiveResponses)
	}

	sentiment := SentimentNeutral
	switch {
	case positive > negative && positive > uncertain:
		sentiment = SentimentPositive
	case negative > positive && negative > uncertain:
		sentiment = SentimentNegative
	case uncertain > positive && uncertain > negative:
		sentiment = SentimentUncertain
	}

	emotion := detectEmotion(normalized)
	intent := deriveIntent(sentiment, emotion, normalized)

	a := Analysis{
		Sentiment:         sentiment,
		Intent:            intent,
		Emotion:           emotion,
		Keywords:          extractKeywords(tokens),
		ObjectionType:     DetectObjection(normalized),
		BuyingSignals:     DetectBuyingSignals(normalized),
		RiskFactors:       detectRiskFactors(normalized),
		Confidence:        confidenceFor(sentiment, emotion),
		SuggestedServices: suggestServices(normalized),
	}

	a.NeedsUpsell = sentiment == SentimentPositive &&
		(containsAny(normalized, expansionKeywords) || len(a.BuyingSignals) > 2)

	a.NeedsConvincing = sentiment == SentimentNegative ||
		sentiment == SentimentUncertain ||
		(sentiment == SentimentNeutral && emotion == EmotionSkeptical) ||
		(ctx != nil && ctx.ObjectionCount > 0)

	return a
}

// DetectObjection returns the first matching objection category, if any.
func DetectObjection(normalized string) ObjectionType {
	for _, cat := range objectionCategories {
		if containsAny(normalized, cat.patterns) {
			return cat.objection
		}
	}
	return ObjectionNone
}

// DetectBuyingSignals collects purchase-readiness tags from the reply.
func DetectBuyingSignals(normalized string) []string {
	var signals []string
	for _, rule := range buyingSignalRules {
		if containsAny(normalized, rule.patterns) {
			signals = append(signals, rule.tag)
		}
	}
	return signals
}

func detectRiskFactors(normalized string) []string {
	var risks []string
	for _, rule := range riskFactorRules {
		if containsAny(normalized, rule.patterns) {
			risks = append(risks, rule.tag)
		}
	}
	return risks
}

func detectEmotion(normalized string) Emotion {
	for _, group := range emotionGroups {
		if containsAny(normalized, group.patterns) {
			return group.emotion
		}
	}
	return EmotionIndifferent
}

func deriveIntent(sentiment Sentiment, emotion Emotion, normalized string) Intent {
	switch {
	case sentiment == SentimentNegative:
		return IntentObjecting
	case sentiment == SentimentUncertain || emotion == EmotionSkeptical:
		return IntentHesitant
	case sentiment == SentimentPositive &&
		(utf8.RuneCountInString(normalized) > 20 || emotion == EmotionExcited || emotion == EmotionConfident):
		return IntentReadyToBuy
	default:
		return IntentInterested
	}
}

func confidenceFor(sentiment Sentiment, emotion Emotion) int {
	if byEmotion, ok := confidenceTable[sentiment]; ok {
		if score, ok := byEmotion[emotion]; ok {
			return score
		}
	}
	return defaultConfidence
}

func extractKeywords(tokens []string) []string {
	var keywords []string
	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= 3 {
			continue
		}
		if _, stop := stopWords[token]; stop {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

func suggestServices(normalized string) []string {
	var services []string
	seen := map[string]struct{}{}
	for _, rule := range serviceSuggestionRules {
		if !containsAny(normalized, rule.patterns) {
			continue
		}
		for _, svc := range rule.services {
			if _, dup := seen[svc]; dup {
				continue
			}
			seen[svc] = struct{}{}
			services = append(services, svc)
		}
	}
	return services
}

func tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.Trim(f, tokenCutset); f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// matchScore counts vocabulary hits. Single words match whole tokens;
// phrases match as substrings and weigh double.
func matchScore(normalized string, tokens []string, vocab []string) float64 {
	var score float64
	for _, entry := range vocab {
		if strings.Contains(entry, " ") {
			if strings.Contains(normalized, entry) {
				score += 2
			}
			continue
		}
		for _, token := range tokens {
			if token == entry {
				score++
			}
		}
	}
	return score
}

func containsAny(normalized string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(normalized, p) {
			return true
		}
	}
	return false
}
