package detector

import (
	"fmt"
	"strings"

	"github.com/example/scamcheck/internal/rules"
	"github.com/example/scamcheck/internal/signal"
)

// Check is a structural red-flag test evaluated after the keyword table.
type Check struct {
	Name        string
	Label       string
	Explanation string
	Category    signal.Category
	Match       func(text string) bool
}

// Detector scans text for keyword triggers followed by structural checks.
// It holds no mutable state and is safe for concurrent use.
type Detector struct {
	rules  []rules.Rule
	checks []Check
}

// New builds a detector over a rule set and an ordered list of checks.
func New(set *rules.Set, checks []Check) *Detector {
	if set == nil {
		set = rules.Default()
	}
	copied := make([]Check, len(checks))
	copy(copied, checks)
	return &Detector{rules: set.Rules(), checks: copied}
}

// NewDefault wires the built-in rules with every built-in check.
func NewDefault() *Detector {
	checks, err := DefaultRegistry.BuildChecks(Order)
	if err != nil {
		panic(err)
	}
	return New(rules.Default(), checks)
}

// Detect returns keyword findings in rule-table order, then one finding per
// matching check in check order. A trigger seen several times is reported once.
func (d *Detector) Detect(text string) []signal.Finding {
	var findings []signal.Finding
	lower := strings.ToLower(text)

	for _, r := range d.rules {
		if !strings.Contains(lower, r.Trigger) {
			continue
		}
		findings = append(findings, signal.Finding{
			Label:       KeywordLabel(r.Trigger),
			Explanation: r.Explanation,
			Category:    r.Category,
			Source:      "keyword:" + r.Trigger,
		})
	}

	for _, c := range d.checks {
		if !c.Match(text) {
			continue
		}
		findings = append(findings, signal.Finding{
			Label:       c.Label,
			Explanation: c.Explanation,
			Category:    c.Category,
			Source:      c.Name,
		})
	}

	return findings
}

// KeywordLabel is the label used for a keyword finding.
func KeywordLabel(trigger string) string {
	return fmt.Sprintf("Contains suspicious keyword: '%s'", trigger)
}
