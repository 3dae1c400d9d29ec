package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildContext_Counts(t *testing.T) {
	answers := []string{
		"да, отлично",
		"дорого, не по бюджету",
		"хочу магазин с корзиной",
		"когда можно начать?",
	}
	ctx := BuildContext(answers, nil)

	assert.Equal(t, answers, ctx.PreviousAnswers)
	assert.Equal(t, 1, ctx.ObjectionCount)
	assert.Equal(t, 2, ctx.PositiveResponses)
	assert.GreaterOrEqual(t, ctx.BuyingSignalsDetected, 2)
	assert.Equal(t, []string{"ecommerce"}, ctx.TopicsDiscussed)
}

func TestBuildContext_Empty(t *testing.T) {
	ctx := BuildContext(nil, nil)

	assert.Zero(t, ctx.ObjectionCount)
	assert.Zero(t, ctx.PositiveResponses)
	assert.Zero(t, ctx.BuyingSignalsDetected)
	assert.Empty(t, ctx.TopicsDiscussed)
	assert.Nil(t, ctx.LastPersuasionAttempt)
}

func TestBuildContext_SkipsBlankAnswers(t *testing.T) {
	ctx := BuildContext([]string{"  ", "", "да"}, nil)
	assert.Equal(t, 1, ctx.PositiveResponses)
}

func TestBuildContext_TopicsSortedAndDeduped(t *testing.T) {
	answers := []string{
		"нужна реклама и трафик",
		"магазин с товарами",
		"еще подумаю про рекламу",
	}
	ctx := BuildContext(answers, nil)
	assert.Equal(t, []string{"ecommerce", "promotion"}, ctx.TopicsDiscussed)
}

func TestBuildContext_CarriesLastPersuasion(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := BuildContext([]string{"да"}, &at)
	assert.Equal(t, &at, ctx.LastPersuasionAttempt)
}
