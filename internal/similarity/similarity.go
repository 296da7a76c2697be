package similarity

import (
	"strconv"
	"strings"

	"github.com/example/scamcheck/internal/signal"
	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the ratio a phrase must exceed to be reported.
const DefaultThreshold = 0.6

// DefaultPhrases is the built-in reference corpus of known scam phrasing.
var DefaultPhrases = []string{
	"This is urgent, wire funds now",
	"We have locked your account, click here to reset",
	"Please purchase gift cards and send the codes",
}

// Matcher compares text against reference phrases with a sequence-matcher ratio.
type Matcher struct {
	Threshold float64
}

// NewMatcher returns a matcher using the given threshold, or DefaultThreshold when it is not in (0, 1).
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &Matcher{Threshold: threshold}
}

// Match returns, in corpus order, every phrase whose ratio to text exceeds the threshold.
func (m *Matcher) Match(text string, phrases []string) []signal.PhraseMatch {
	var matches []signal.PhraseMatch
	if len(phrases) == 0 {
		return matches
	}

	source := runes(strings.ToLower(text))
	sm := difflib.NewMatcher(source, nil)
	for _, phrase := range phrases {
		sm.SetSeq2(runes(strings.ToLower(phrase)))
		ratio := sm.Ratio()
		if ratio > m.Threshold {
			matches = append(matches, signal.PhraseMatch{Phrase: phrase, Similarity: round2(ratio)})
		}
	}
	return matches
}

// Ratio is the case-insensitive similarity of two strings in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(runes(strings.ToLower(a)), runes(strings.ToLower(b))).Ratio()
}

// runes splits s into one element per character so the matcher works at character level.
func runes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// round2 rounds on the exact binary value, so ties such as 0.625 go to the even digit.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}
