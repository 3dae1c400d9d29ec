package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartsites-digital/leadchat/internal/leads"
)

func TestTranslate(t *testing.T) {
	c := NewCatalog("ru")

	email := c.Translate("ru", KeyAskEmail, map[string]string{"name": "Анна"})
	assert.Contains(t, email, "Анна")
	assert.NotContains(t, email, "{name}")

	english := c.Translate("en", KeyBudgetQ, nil)
	assert.Equal(t, "What budget are you considering?", english)
}

func TestTranslate_UnknownKeyReturnsKey(t *testing.T) {
	c := NewCatalog("ru")
	assert.Equal(t, "chat.no_such_key", c.Translate("ru", "chat.no_such_key", nil))
}

func TestTranslate_UnsupportedLocaleFallsBack(t *testing.T) {
	c := NewCatalog("ru")
	assert.Equal(t,
		c.Translate("ru", KeyAskName, nil),
		c.Translate("de", KeyAskName, nil))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, LocaleEN, Normalize("en"))
	assert.Equal(t, LocaleEN, Normalize("en-US"))
	assert.Equal(t, LocaleRU, Normalize("ru"))
	assert.Equal(t, LocaleRU, Normalize(""))
	assert.Equal(t, LocaleRU, Normalize("fr"))
}

func TestServiceQuestions(t *testing.T) {
	c := NewCatalog("ru")

	shop := c.ServiceQuestions("ru", leads.ServiceOnlineShop)
	require.Len(t, shop, 3)
	assert.Contains(t, shop[0], "товаров")

	fallback := c.ServiceQuestions("ru", leads.ServiceUnknown)
	assert.Equal(t, defaultQuestions[LocaleRU], fallback)
}

func TestServiceQuestions_AllKindsCoveredInBothLocales(t *testing.T) {
	kinds := []leads.ServiceKind{
		leads.ServiceLanding, leads.ServiceCorporate, leads.ServiceOnlineShop,
		leads.ServiceWebApp, leads.ServiceCRM, leads.ServiceSEO,
		leads.ServiceMarketing, leads.ServicePayment, leads.ServiceAutomation,
		leads.ServiceTelegramBot, leads.ServiceRedesign,
	}
	c := NewCatalog("ru")
	for _, loc := range []string{"ru", "en"} {
		for _, kind := range kinds {
			questions := c.ServiceQuestions(loc, kind)
			assert.NotEmpty(t, questions, "locale %s kind %s", loc, kind)
		}
	}
}

func TestOptions(t *testing.T) {
	c := NewCatalog("ru")

	timeline := c.TimelineOptions("ru")
	require.Len(t, timeline, 4)
	assert.Equal(t, "flexible", timeline[3].Value)

	budget := c.BudgetOptions("en")
	require.Len(t, budget, 4)
	assert.Equal(t, "under_50k", budget[0].Value)
}
