// Package persuasion builds rebuttal and upsell messages for reluctant or
// receptive visitors. All copy is hand-authored per locale; the package does
// no text generation beyond template assembly.
package persuasion

import (
	"fmt"
	"strings"
)

// Strategy is a composable bag of persuasion fragments. Templates fill only
// the fields they use; empty fields are skipped when rendering.
type Strategy struct {
	Message         string
	Statistics      string
	Benefits        []string
	Urgency         string
	SocialProof     string
	Scarcity        string
	Reciprocity     string
	Anchoring       string
	RiskReversal    string
	EmotionalAppeal string
}

// Render assembles the present fragments in a fixed order and appends the
// closing question.
func (s *Strategy) Render(closing string) string {
	var b strings.Builder
	b.WriteString(s.Message)

	appendPart := func(part string) {
		if part != "" {
			b.WriteString("\n\n")
			b.WriteString(part)
		}
	}

	appendPart(s.Statistics)
	if len(s.Benefits) > 0 {
		var list strings.Builder
		for i, benefit := range s.Benefits {
			if i > 0 {
				list.WriteString("\n")
			}
			fmt.Fprintf(&list, "%d. %s", i+1, benefit)
		}
		appendPart(list.String())
	}
	appendPart(s.Anchoring)
	appendPart(s.RiskReversal)
	appendPart(s.Reciprocity)
	appendPart(s.Urgency)
	appendPart(s.Scarcity)
	appendPart(s.SocialProof)
	appendPart(s.EmotionalAppeal)
	appendPart(closing)

	return b.String()
}
