package persuasion

import (
	"strings"

	"github.com/smartsites-digital/leadchat/internal/analysis"
)

type templateKind int

const (
	templatePrice templateKind = iota
	templateNeed
	templateComplexity
	templateDontKnow
	templateTime
	templateCompetition
	templateGeneric
)

var dontKnowPhrases = []string{"не знаю", "хз", "понятия не имею", "don't know", "no idea"}

var uncertaintyPhrases = []string{"сомнева", "не уверен", "not sure", "doubt"}

// Generator selects and fills one of seven hand-authored rebuttal templates.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a filled strategy for a reply that needs convincing, or
// nil when no rebuttal is warranted.
func (g *Generator) Generate(locale, answer string, a analysis.Analysis) *Strategy {
	if !a.NeedsConvincing {
		return nil
	}
	kind := selectTemplate(strings.ToLower(answer), a)
	return buildTemplate(normalizeLocale(locale), kind)
}

// Closing picks the follow-up question appended after the rendered strategy.
func (g *Generator) Closing(locale string, a analysis.Analysis) string {
	loc := normalizeLocale(locale)
	if closing, ok := closingByObjection[loc][a.ObjectionType]; ok {
		return closing
	}
	if closing, ok := closingByEmotion[loc][a.Emotion]; ok {
		return closing
	}
	return closingDefault[loc]
}

// Templates are tried in a fixed order so that a reply carrying several cues
// always resolves to the same rebuttal.
func selectTemplate(answer string, a analysis.Analysis) templateKind {
	switch {
	case a.ObjectionType == analysis.ObjectionPrice:
		return templatePrice
	case a.ObjectionType == analysis.ObjectionNeed || containsAny(answer, uncertaintyPhrases):
		return templateNeed
	case a.ObjectionType == analysis.ObjectionComplexity:
		return templateComplexity
	case containsAny(answer, dontKnowPhrases):
		return templateDontKnow
	case a.ObjectionType == analysis.ObjectionTime:
		return templateTime
	case a.ObjectionType == analysis.ObjectionCompetition:
		return templateCompetition
	default:
		return templateGeneric
	}
}

func containsAny(answer string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(answer, p) {
			return true
		}
	}
	return false
}

func normalizeLocale(locale string) string {
	if locale == "en" {
		return "en"
	}
	return "ru"
}
