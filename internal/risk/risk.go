package risk

import "github.com/example/scamcheck/internal/signal"

const (
	FindingWeight = 20
	MatchWeight   = 15
	MaxScore      = 100
)

// Score aggregates findings and phrase matches into a score clamped to [0, 100].
func Score(findings []signal.Finding, matches []signal.PhraseMatch) int {
	raw := FindingWeight*len(findings) + MatchWeight*len(matches)
	if raw > MaxScore {
		return MaxScore
	}
	return raw
}

// Level buckets a score for display.
type Level string

const (
	LevelSafe    Level = "safe"
	LevelCaution Level = "caution"
	LevelHigh    Level = "high"
)

// LevelFor maps 0 to safe, up to 50 to caution, anything above to high.
func LevelFor(score int) Level {
	switch {
	case score <= 0:
		return LevelSafe
	case score <= 50:
		return LevelCaution
	default:
		return LevelHigh
	}
}

// Label is the human-readable badge text.
func (l Level) Label() string {
	switch l {
	case LevelSafe:
		return "Looks Safe"
	case LevelCaution:
		return "Be Cautious"
	default:
		return "High Risk"
	}
}
