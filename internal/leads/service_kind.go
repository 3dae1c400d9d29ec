package leads

import "strings"

// ServiceKind identifies a studio service offering.
type ServiceKind string

const (
	ServiceLanding     ServiceKind = "landing"
	ServiceCorporate   ServiceKind = "corporate"
	ServiceOnlineShop  ServiceKind = "online_shop"
	ServiceWebApp      ServiceKind = "web_app"
	ServiceCRM         ServiceKind = "crm_integration"
	ServiceSEO         ServiceKind = "seo"
	ServiceMarketing   ServiceKind = "marketing"
	ServicePayment     ServiceKind = "payment_integration"
	ServiceAutomation  ServiceKind = "automation"
	ServiceTelegramBot ServiceKind = "telegram_bot"
	ServiceRedesign    ServiceKind = "redesign"
	ServiceUnknown     ServiceKind = "unknown"
)

// serviceAliases maps normalized display names (both locales) and raw kind
// keys to their ServiceKind. Lookup is exact-match on the normalized name,
// never substring scanning.
var serviceAliases = map[string]ServiceKind{
	"лендинг":                 ServiceLanding,
	"landing page":            ServiceLanding,
	"корпоративный сайт":      ServiceCorporate,
	"corporate website":       ServiceCorporate,
	"интернет-магазин":        ServiceOnlineShop,
	"online shop":             ServiceOnlineShop,
	"online store":            ServiceOnlineShop,
	"веб-приложение":          ServiceWebApp,
	"web application":         ServiceWebApp,
	"crm-интеграция":          ServiceCRM,
	"crm integration":         ServiceCRM,
	"seo-оптимизация":         ServiceSEO,
	"seo optimization":        ServiceSEO,
	"маркетинговая стратегия": ServiceMarketing,
	"marketing strategy":      ServiceMarketing,
	"интеграция оплаты":       ServicePayment,
	"payment integration":     ServicePayment,
	"автоматизация бизнеса":   ServiceAutomation,
	"business automation":     ServiceAutomation,
	"telegram-бот":            ServiceTelegramBot,
	"telegram bot":            ServiceTelegramBot,
	"редизайн сайта":          ServiceRedesign,
	"website redesign":        ServiceRedesign,
}

// websiteTypeLabels gives the derived website-type label stored on the record.
var websiteTypeLabels = map[ServiceKind]string{
	ServiceLanding:     "landing",
	ServiceCorporate:   "corporate",
	ServiceOnlineShop:  "e-commerce",
	ServiceWebApp:      "web-app",
	ServiceCRM:         "integration",
	ServiceSEO:         "promotion",
	ServiceMarketing:   "promotion",
	ServicePayment:     "integration",
	ServiceAutomation:  "integration",
	ServiceTelegramBot: "bot",
	ServiceRedesign:    "redesign",
}

// ServiceKindOf resolves a user-facing service name to its kind.
// Unrecognized names map to ServiceUnknown.
func ServiceKindOf(name string) ServiceKind {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if kind, ok := serviceAliases[normalized]; ok {
		return kind
	}
	// Raw kind keys are accepted too (API clients may send them directly).
	for _, kind := range []ServiceKind{
		ServiceLanding, ServiceCorporate, ServiceOnlineShop, ServiceWebApp,
		ServiceCRM, ServiceSEO, ServiceMarketing, ServicePayment,
		ServiceAutomation, ServiceTelegramBot, ServiceRedesign,
	} {
		if normalized == string(kind) {
			return kind
		}
	}
	return ServiceUnknown
}

// WebsiteTypeLabel returns the derived website-type label for a kind.
func WebsiteTypeLabel(kind ServiceKind) string {
	if label, ok := websiteTypeLabels[kind]; ok {
		return label
	}
	return "custom"
}
