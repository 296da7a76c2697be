package detector

import (
	"regexp"
	"strings"

	"github.com/example/scamcheck/internal/signal"
)

const (
	CheckCallToAction = "call-to-action"
	CheckBrevity      = "brevity"
	CheckAuthority    = "authority"

	// MinWords is the token count below which a message counts as unusually brief.
	MinWords = 10
)

var callToActionRegex = regexp.MustCompile(`(?i)click\s+here|verify\s+now|act\s+fast`)

// Substring semantics: "hr" also matches inside longer words.
var authorityRegex = regexp.MustCompile(`(?i)boss|ceo|manager|director|hr`)

func callToActionCheck() Check {
	return Check{
		Name:        CheckCallToAction,
		Label:       "Contains call-to-action phrases common in scams",
		Explanation: "Links like 'click here' can lead to phishing sites.",
		Category:    signal.CategoryPhishing,
		Match:       callToActionRegex.MatchString,
	}
}

func brevityCheck() Check {
	return Check{
		Name:        CheckBrevity,
		Label:       "Very short message – could be AI-generated or phishing",
		Explanation: "Scam messages can be unusually brief.",
		Category:    signal.CategoryGeneral,
		Match: func(text string) bool {
			return len(strings.Fields(text)) < MinWords
		},
	}
}

func authorityCheck() Check {
	return Check{
		Name:        CheckAuthority,
		Label:       "Mentions authority figures – watch for impersonation",
		Explanation: "Attackers impersonate bosses to force quick action.",
		Category:    signal.CategoryGeneral,
		Match:       authorityRegex.MatchString,
	}
}
