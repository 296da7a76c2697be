package analysis

import (
	"errors"
	"strings"

	"github.com/example/scamcheck/internal/advice"
	"github.com/example/scamcheck/internal/detector"
	"github.com/example/scamcheck/internal/risk"
	"github.com/example/scamcheck/internal/signal"
	"github.com/example/scamcheck/internal/similarity"
)

// ErrNoText is returned by RequireText when there is nothing to analyze.
var ErrNoText = errors.New("no text available for analysis")

// Result is the complete assessment for one message.
type Result struct {
	ID              string               `json:"id,omitempty"`
	Text            string               `json:"text"`
	Findings        []signal.Finding     `json:"findings"`
	Matches         []signal.PhraseMatch `json:"matches"`
	Score           int                  `json:"riskScore"`
	Level           risk.Level           `json:"riskLevel"`
	Categories      []signal.Category    `json:"categories"`
	Recommendations []string             `json:"recommendations"`
}

// Engine runs the detector, matcher, scorer and recommendation selector over a message.
// All of its state is read-only after construction, so one Engine may serve concurrent callers.
type Engine struct {
	detector *detector.Detector
	matcher  *similarity.Matcher
	phrases  []string
}

// NewEngine builds an engine. A nil detector or matcher falls back to the built-in one;
// a nil corpus falls back to similarity.DefaultPhrases.
func NewEngine(d *detector.Detector, m *similarity.Matcher, phrases []string) *Engine {
	if d == nil {
		d = detector.NewDefault()
	}
	if m == nil {
		m = similarity.NewMatcher(similarity.DefaultThreshold)
	}
	if phrases == nil {
		phrases = similarity.DefaultPhrases
	}
	copied := make([]string, len(phrases))
	copy(copied, phrases)
	return &Engine{detector: d, matcher: m, phrases: copied}
}

// Phrases returns a copy of the reference corpus.
func (e *Engine) Phrases() []string {
	out := make([]string, len(e.phrases))
	copy(out, e.phrases)
	return out
}

// Analyze assesses a single message. It never fails: text without red flags
// yields an empty result with score 0 and the stay-vigilant recommendation.
func (e *Engine) Analyze(text string) Result {
	findings := e.detector.Detect(text)
	matches := e.matcher.Match(text, e.phrases)
	score := risk.Score(findings, matches)
	categories := signal.CategoriesOf(findings)

	if findings == nil {
		findings = []signal.Finding{}
	}
	if matches == nil {
		matches = []signal.PhraseMatch{}
	}
	ordered := categories.Ordered()
	if ordered == nil {
		ordered = []signal.Category{}
	}

	return Result{
		Text:            text,
		Findings:        findings,
		Matches:         matches,
		Score:           score,
		Level:           risk.LevelFor(score),
		Categories:      ordered,
		Recommendations: advice.Recommend(categories),
	}
}

// RequireText rejects blank input before analysis.
func RequireText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoText
	}
	return nil
}
