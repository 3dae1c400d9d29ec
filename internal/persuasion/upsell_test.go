package persuasion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsites-digital/leadchat/internal/analysis"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func coin(heads bool) func() bool {
	return func() bool { return heads }
}

func receptiveAnalysis(services ...string) analysis.Analysis {
	return analysis.Analysis{
		Sentiment:         analysis.SentimentPositive,
		Confidence:        75,
		NeedsUpsell:       true,
		SuggestedServices: services,
	}
}

func TestUpsell_PicksFirstSuggestion(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	g := NewUpsellGenerator(DefaultUpsellCooldown, WithClock(fixedClock(now)), WithCoin(coin(false)))

	msg := g.Generate("ru", "Интернет-магазин", receptiveAnalysis("SEO-оптимизация", "Telegram-бот"), nil)
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "SEO-оптимизация")
	assert.NotContains(t, msg, upsellScarcity["ru"])
}

func TestUpsell_DebounceSuppresses(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	last := now.Add(-10 * time.Second)
	g := NewUpsellGenerator(30*time.Second, WithClock(fixedClock(now)), WithCoin(coin(false)))

	ctx := &analysis.Context{LastPersuasionAttempt: &last}
	assert.Empty(t, g.Generate("ru", "Интернет-магазин", receptiveAnalysis("SEO-оптимизация"), ctx))
}

func TestUpsell_AllowedAfterCooldown(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	last := now.Add(-31 * time.Second)
	g := NewUpsellGenerator(30*time.Second, WithClock(fixedClock(now)), WithCoin(coin(false)))

	ctx := &analysis.Context{LastPersuasionAttempt: &last}
	assert.NotEmpty(t, g.Generate("ru", "Интернет-магазин", receptiveAnalysis("SEO-оптимизация"), ctx))
}

func TestUpsell_NotReceptive(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	a := analysis.Analysis{
		Sentiment:         analysis.SentimentNeutral,
		Confidence:        50,
		SuggestedServices: []string{"SEO-оптимизация"},
	}
	assert.Empty(t, g.Generate("ru", "Интернет-магазин", a, nil))
}

func TestUpsell_PositiveHighConfidenceWithoutNeedsUpsell(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	a := analysis.Analysis{
		Sentiment:         analysis.SentimentPositive,
		Confidence:        65,
		SuggestedServices: []string{"Telegram-бот"},
	}
	assert.NotEmpty(t, g.Generate("ru", "Интернет-магазин", a, nil))
}

func TestUpsell_SkipsSelectedService(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	msg := g.Generate("ru", "SEO-оптимизация", receptiveAnalysis("SEO-оптимизация", "Telegram-бот"), nil)
	assert.Contains(t, msg, "Telegram-бот")

	assert.Empty(t, g.Generate("ru", "SEO-оптимизация", receptiveAnalysis("SEO-оптимизация"), nil))
}

func TestUpsell_NoSuggestions(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))
	assert.Empty(t, g.Generate("ru", "Интернет-магазин", receptiveAnalysis(), nil))
}

func TestUpsell_ProcessInterestPrefersAutomation(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	a := receptiveAnalysis("SEO-оптимизация", "Автоматизация бизнеса")
	a.BuyingSignals = []string{analysis.SignalProcessInterest}

	msg := g.Generate("ru", "Интернет-магазин", a, nil)
	assert.Contains(t, msg, "Автоматизация бизнеса")
}

func TestUpsell_PriceInquiryPrefersHighValue(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	a := receptiveAnalysis("Telegram-бот", "Маркетинговая стратегия")
	a.BuyingSignals = []string{analysis.SignalPriceInquiry}

	msg := g.Generate("ru", "Интернет-магазин", a, nil)
	assert.Contains(t, msg, "Маркетинговая стратегия")
}

func TestUpsell_ScarcityClause(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(true)))

	msg := g.Generate("ru", "Интернет-магазин", receptiveAnalysis("SEO-оптимизация"), nil)
	assert.Contains(t, msg, upsellScarcity["ru"])
}

func TestUpsell_GenericBenefitForUnmappedService(t *testing.T) {
	g := NewUpsellGenerator(0, WithCoin(coin(false)))

	msg := g.Generate("ru", "Интернет-магазин", receptiveAnalysis("Брендинг"), nil)
	assert.Contains(t, msg, "Брендинг")
	assert.Contains(t, msg, "окупится")
}
