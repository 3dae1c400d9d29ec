// Package analysis classifies free-text visitor replies with deterministic
// keyword matching. There is no NLU here on purpose: every verdict must be
// reproducible for the same input, so the chat engine stays testable.
package analysis

import "time"

// Sentiment is the overall tone of a reply.
type Sentiment string

const (
	SentimentPositive  Sentiment = "positive"
	SentimentNegative  Sentiment = "negative"
	SentimentUncertain Sentiment = "uncertain"
	SentimentNeutral   Sentiment = "neutral"
)

// Emotion is the dominant emotional note, picked by priority order.
type Emotion string

const (
	EmotionExcited     Emotion = "excited"
	EmotionCurious     Emotion = "curious"
	EmotionWorried     Emotion = "worried"
	EmotionSkeptical   Emotion = "skeptical"
	EmotionConfident   Emotion = "confident"
	EmotionIndifferent Emotion = "indifferent"
)

// Intent is what the visitor appears to want from this turn.
type Intent string

const (
	IntentObjecting  Intent = "objecting"
	IntentHesitant   Intent = "hesitant"
	IntentReadyToBuy Intent = "ready_to_buy"
	IntentInterested Intent = "interested"
)

// ObjectionType categorizes a reluctant reply.
type ObjectionType string

const (
	ObjectionNone        ObjectionType = ""
	ObjectionPrice       ObjectionType = "price"
	ObjectionTime        ObjectionType = "time"
	ObjectionComplexity  ObjectionType = "complexity"
	ObjectionNeed        ObjectionType = "need"
	ObjectionCompetition ObjectionType = "competition"
)

// Buying-signal tags.
const (
	SignalTimingInterest   = "timing_interest"
	SignalPriceInquiry     = "price_inquiry"
	SignalProcessInterest  = "process_interest"
	SignalGuaranteeSeeking = "guarantee_seeking"
	SignalProofSeeking     = "proof_seeking"
	SignalReadiness        = "readiness"
)

// Risk-factor tags.
const (
	RiskProcrastination = "procrastination"
	RiskIndecision      = "indecision"
	RiskBudgetConcern   = "budget_concern"
	RiskUncertainty     = "uncertainty"
	RiskDistrust        = "distrust"
)

// Analysis is the derived classification of one reply. It is never stored.
type Analysis struct {
	Sentiment         Sentiment
	Intent            Intent
	Emotion           Emotion
	Keywords          []string
	ObjectionType     ObjectionType
	BuyingSignals     []string
	RiskFactors       []string
	Confidence        int
	NeedsUpsell       bool
	NeedsConvincing   bool
	SuggestedServices []string
}

// Context carries running statistics derived from the conversation history.
// It is recomputed from the transcript each turn, never persisted.
type Context struct {
	PreviousAnswers       []string
	ObjectionCount        int
	PositiveResponses     int
	TopicsDiscussed       []string
	BuyingSignalsDetected int
	LastPersuasionAttempt *time.Time
}
