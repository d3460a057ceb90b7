package intent

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// classifier is a deterministic keyword matcher. Rules are checked in
// declaration order and the first hit wins; free text that matches nothing is
// IntentUnknown and falls through to the AI assistant.
type classifier struct {
	rules []rule
}

type rule struct {
	intent Intent
	// every keyword in all must appear; when any is non-empty at least one of
	// its keywords must appear too.
	all []string
	any []string
}

func NewClassifier() IClassifier {
	return &classifier{
		rules: []rule{
			{intent: IntentBookAppointment, all: []string{"book", "appointment"}},
			{intent: IntentCheckAppointment, all: []string{"check", "appointment"}},
			{intent: IntentCancelAppointment, all: []string{"cancel", "appointment"}},
			{intent: IntentListDoctors, all: []string{"doctor"}, any: []string{"available", "list"}},
			{intent: IntentCheckSymptoms, all: []string{"symptom"}},
		},
	}
}

func (c *classifier) Classify(text string) Intent {
	cleaned := cleanText(text)

	for _, rl := range c.rules {
		if matches(cleaned, rl) {
			return rl.intent
		}
	}

	return IntentUnknown
}

// NeedsMenu reports whether the utterance asks for orientation, in which case
// the main menu is appended to the assistant's reply.
func (c *classifier) NeedsMenu(text string) bool {
	cleaned := cleanText(text)
	for _, kw := range []string{"help", "option", "menu"} {
		if strings.Contains(cleaned, kw) {
			return true
		}
	}
	return false
}

func matches(text string, rl rule) bool {
	for _, kw := range rl.all {
		if !strings.Contains(text, kw) {
			return false
		}
	}

	if len(rl.any) == 0 {
		return true
	}
	for _, kw := range rl.any {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func cleanText(text string) string {
	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
