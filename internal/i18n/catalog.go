// Package i18n holds all user-facing chat copy. The engine never hard-codes
// display strings; every prompt is looked up here by key and locale.
package i18n

import (
	"strings"

	"github.com/smartsites-digital/leadchat/internal/leads"
)

const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// Message keys used by the chat engine.
const (
	KeyGreeting        = "chat.greeting"
	KeySelectService   = "chat.select_service"
	KeyTimelineQ       = "chat.timeline_question"
	KeyBudgetQ         = "chat.budget_question"
	KeyAskName         = "chat.ask_name"
	KeyAskEmail        = "chat.ask_email"
	KeyAskPhone        = "chat.ask_phone"
	KeyThanks          = "chat.thanks"
	KeyReadyToProceed  = "chat.ready_to_proceed"
	KeySubmitError     = "chat.submit_error"
	KeyDiscountGranted = "chat.discount_granted"
)

// Catalog resolves locale-aware chat copy. The zero value is not usable;
// construct with NewCatalog.
type Catalog struct {
	defaultLocale string
}

func NewCatalog(defaultLocale string) *Catalog {
	return &Catalog{defaultLocale: Normalize(defaultLocale)}
}

// Normalize maps any locale tag onto a supported one. Russian is the default.
func Normalize(locale string) string {
	if strings.HasPrefix(strings.ToLower(locale), "en") {
		return LocaleEN
	}
	return LocaleRU
}

// DefaultLocale is the catalog-wide fallback for sessions without a locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Translate looks up a key and substitutes {param} placeholders. Unknown keys
// return the key itself so a missing entry is visible, not silent.
func (c *Catalog) Translate(locale, key string, params map[string]string) string {
	loc := Normalize(locale)
	text, ok := messages[loc][key]
	if !ok {
		if text, ok = messages[c.defaultLocale][key]; !ok {
			return key
		}
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// ServiceQuestions returns the ordered question list for a service. Services
// without a configured list get the default one.
func (c *Catalog) ServiceQuestions(locale string, kind leads.ServiceKind) []string {
	loc := Normalize(locale)
	if questions, ok := serviceQuestions[loc][kind]; ok {
		return questions
	}
	return defaultQuestions[loc]
}

// TimelineOptions lists the clickable timeline answers in display order.
func (c *Catalog) TimelineOptions(locale string) []Option {
	return timelineOptions[Normalize(locale)]
}

// BudgetOptions lists the clickable budget answers in display order.
func (c *Catalog) BudgetOptions(locale string) []Option {
	return budgetOptions[Normalize(locale)]
}

// Option is a clickable answer button. Value is the stable identifier the
// engine receives; Label is what the visitor sees.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
