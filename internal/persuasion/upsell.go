package persuasion

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/smartsites-digital/leadchat/internal/analysis"
)

// DefaultUpsellCooldown is the minimum gap between interjections. One
// authoritative value is used everywhere to keep the pacing predictable.
const DefaultUpsellCooldown = 30 * time.Second

// UpsellGenerator proposes an adjacent service to a receptive visitor.
// The clock and the coin flip are injectable so tests stay deterministic.
type UpsellGenerator struct {
	cooldown time.Duration
	now      func() time.Time
	coin     func() bool
}

type UpsellOption func(*UpsellGenerator)

func WithClock(now func() time.Time) UpsellOption {
	return func(g *UpsellGenerator) { g.now = now }
}

func WithCoin(coin func() bool) UpsellOption {
	return func(g *UpsellGenerator) { g.coin = coin }
}

func NewUpsellGenerator(cooldown time.Duration, opts ...UpsellOption) *UpsellGenerator {
	if cooldown <= 0 {
		cooldown = DefaultUpsellCooldown
	}
	g := &UpsellGenerator{
		cooldown: cooldown,
		now:      time.Now,
		coin:     func() bool { return rand.Intn(2) == 0 },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns an upsell message, or "" when the visitor is not
// receptive, the debounce window is still open, or nothing fits.
func (g *UpsellGenerator) Generate(locale, selectedService string, a analysis.Analysis, ctx *analysis.Context) string {
	if ctx != nil && ctx.LastPersuasionAttempt != nil &&
		g.now().Sub(*ctx.LastPersuasionAttempt) < g.cooldown {
		return ""
	}
	receptive := a.NeedsUpsell ||
		(a.Sentiment == analysis.SentimentPositive && a.Confidence >= 60)
	if !receptive {
		return ""
	}

	suggestion := pickSuggestion(selectedService, a)
	if suggestion == "" {
		return ""
	}

	loc := normalizeLocale(locale)
	benefit, ok := upsellBenefits[loc][suggestion]
	if !ok {
		benefit = fmt.Sprintf(upsellGenericBenefit[loc], suggestion)
	}

	msg := fmt.Sprintf(upsellIntro[loc], suggestion) + " " + benefit
	if g.coin() {
		msg += " " + upsellScarcity[loc]
	}
	return msg
}

// pickSuggestion prefers automation when the visitor asks about process and
// high-value services when they ask about price; otherwise the analyzer's
// first suggestion wins. The already selected service is never re-offered.
func pickSuggestion(selectedService string, a analysis.Analysis) string {
	var candidates []string
	for _, svc := range a.SuggestedServices {
		if svc != selectedService {
			candidates = append(candidates, svc)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	if hasSignal(a.BuyingSignals, analysis.SignalProcessInterest) {
		if svc := firstMatching(candidates, "втоматизац", "utomation"); svc != "" {
			return svc
		}
	}
	if hasSignal(a.BuyingSignals, analysis.SignalPriceInquiry) {
		if svc := firstMatching(candidates, "SEO", "аркетинг", "arketing"); svc != "" {
			return svc
		}
	}
	return candidates[0]
}

func hasSignal(signals []string, tag string) bool {
	for _, s := range signals {
		if s == tag {
			return true
		}
	}
	return false
}

func firstMatching(candidates []string, fragments ...string) string {
	for _, svc := range candidates {
		for _, frag := range fragments {
			if strings.Contains(svc, frag) {
				return svc
			}
		}
	}
	return ""
}

var upsellIntro = map[string]string{
	"ru": "Кстати, к вашему проекту отлично подойдёт «%s».",
	"en": "By the way, \"%s\" would be a great fit for your project.",
}

var upsellBenefits = map[string]map[string]string{
	"ru": {
		"Интеграция оплаты":       "Приём оплат прямо на сайте обычно поднимает конверсию заказа на 20-30%.",
		"SEO-оптимизация":         "Выход в топ поисковой выдачи даёт стабильный поток клиентов без затрат на рекламу.",
		"Маркетинговая стратегия": "Продуманная стратегия продвижения окупает сайт в несколько раз быстрее.",
		"CRM-интеграция":          "Все заявки с сайта попадут сразу в вашу CRM, ни один клиент не потеряется.",
		"Автоматизация бизнеса":   "Рутинные операции будут выполняться сами, освобождая вам несколько часов в день.",
		"Telegram-бот":            "Бот отвечает клиентам круглосуточно и собирает заявки даже ночью.",
	},
	"en": {
		"Интеграция оплаты":       "Accepting payments right on the site usually lifts order conversion by 20-30%.",
		"SEO-оптимизация":         "Ranking at the top of search results brings a steady stream of clients without ad spend.",
		"Маркетинговая стратегия": "A well-planned promotion strategy pays the website back several times faster.",
		"CRM-интеграция":          "Every inquiry from the site lands straight in your CRM, no client gets lost.",
		"Автоматизация бизнеса":   "Routine operations run themselves, freeing up hours of your day.",
		"Telegram-бот":            "A bot answers customers around the clock and collects inquiries even at night.",
	},
}

var upsellGenericBenefit = map[string]string{
	"ru": "«%s» усилит ваш проект и быстро окупится.",
	"en": "\"%s\" will strengthen your project and pay for itself quickly.",
}

var upsellScarcity = map[string]string{
	"ru": "В этом месяце на дополнительные услуги действует скидка 15% для новых клиентов.",
	"en": "This month new clients get a 15% discount on add-on services.",
}
