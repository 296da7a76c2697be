package similarity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchVerbatimPhrase(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	for _, phrase := range DefaultPhrases {
		matches := m.Match(phrase, DefaultPhrases)

		require.NotEmpty(t, matches, phrase)
		var exact bool
		for _, match := range matches {
			if match.Phrase == phrase {
				exact = true
				assert.Equal(t, 1.0, match.Similarity)
			}
		}
		assert.True(t, exact, "verbatim phrase %q not matched", phrase)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	matches := m.Match(strings.ToUpper(DefaultPhrases[2]), DefaultPhrases)

	require.Len(t, matches, 1)
	assert.Equal(t, DefaultPhrases[2], matches[0].Phrase)
	assert.Equal(t, 1.0, matches[0].Similarity)
}

func TestMatchSafeMessage(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	matches := m.Match("Team, reminder that our all-hands is tomorrow at 10 AM. No action needed.", DefaultPhrases)
	assert.Empty(t, matches)
}

func TestMatchNearMiss(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	matches := m.Match("this is urgent, wire the funds now!", DefaultPhrases)

	require.Len(t, matches, 1)
	assert.Equal(t, DefaultPhrases[0], matches[0].Phrase)
	assert.Greater(t, matches[0].Similarity, DefaultThreshold)
	assert.Less(t, matches[0].Similarity, 1.0)
}

func TestMatchThresholdIsExclusive(t *testing.T) {
	require.InDelta(t, 0.75, Ratio("abcd", "bcde"), 1e-9)

	assert.Empty(t, NewMatcher(0.75).Match("abcd", []string{"bcde"}))
	assert.Len(t, NewMatcher(0.7).Match("abcd", []string{"bcde"}), 1)
}

func TestMatchPreservesCorpusOrder(t *testing.T) {
	m := NewMatcher(0.5)
	corpus := []string{"abcx", "abcd", "zzzz", "abcy"}
	matches := m.Match("abcd", corpus)

	require.Len(t, matches, 3)
	assert.Equal(t, "abcx", matches[0].Phrase)
	assert.Equal(t, "abcd", matches[1].Phrase)
	assert.Equal(t, "abcy", matches[2].Phrase)
}

func TestMatchRoundsToTwoDecimals(t *testing.T) {
	// 2*5/13 = 0.769...
	matches := NewMatcher(0.6).Match("abcdef", []string{"abcdeXY"})
	require.Len(t, matches, 1)
	assert.Equal(t, 0.77, matches[0].Similarity)
}

func TestMatchRoundsTiesToEven(t *testing.T) {
	// 2*5/16 = 0.625 exactly
	matches := NewMatcher(0.6).Match("abcdexxx", []string{"abcdeyyy"})
	require.Len(t, matches, 1)
	assert.Equal(t, 0.62, matches[0].Similarity)

	tests := map[float64]float64{0.125: 0.12, 0.375: 0.38, 0.875: 0.88, 0.645: 0.65, 1: 1}
	for in, want := range tests {
		assert.Equal(t, want, round2(in), "round2(%v)", in)
	}
}

func TestMatchEmptyInputs(t *testing.T) {
	m := NewMatcher(DefaultThreshold)
	assert.Empty(t, m.Match("anything", nil))
	assert.Empty(t, m.Match("", DefaultPhrases))
}

func TestNewMatcherFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewMatcher(0).Threshold)
	assert.Equal(t, DefaultThreshold, NewMatcher(1.5).Threshold)
	assert.Equal(t, 0.8, NewMatcher(0.8).Threshold)
}
