package rules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/scamcheck/internal/signal"
	"gopkg.in/yaml.v3"
)

// Rule ties a lower-case trigger to the explanation and category reported when it is found.
type Rule struct {
	Trigger     string          `json:"trigger" yaml:"trigger"`
	Explanation string          `json:"explanation" yaml:"explanation"`
	Category    signal.Category `json:"category" yaml:"category"`
}

// Set is an ordered, immutable keyword table. Evaluation follows table order.
type Set struct {
	rules []Rule
}

// New validates the rules and returns a Set that keeps their order.
func New(rules []Rule) (*Set, error) {
	copied := make([]Rule, len(rules))
	copy(copied, rules)

	if err := validate(copied); err != nil {
		return nil, err
	}
	return &Set{rules: copied}, nil
}

// MustNew is New for tables known to be valid at compile time.
func MustNew(rules []Rule) *Set {
	set, err := New(rules)
	if err != nil {
		panic(err)
	}
	return set
}

// Rules returns a copy of the table.
func (s *Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len reports the number of rules.
func (s *Set) Len() int {
	return len(s.rules)
}

func validate(rules []Rule) error {
	if len(rules) == 0 {
		return errors.New("rule set is empty")
	}

	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if strings.TrimSpace(r.Trigger) == "" {
			return fmt.Errorf("rule %d: trigger cannot be empty", i)
		}
		if r.Trigger != strings.ToLower(r.Trigger) {
			return fmt.Errorf("rule %d: trigger %q must be lower-case", i, r.Trigger)
		}
		if _, dup := seen[r.Trigger]; dup {
			return fmt.Errorf("rule %d: duplicate trigger %q", i, r.Trigger)
		}
		seen[r.Trigger] = struct{}{}

		if _, err := signal.ParseCategory(string(r.Category)); err != nil {
			return fmt.Errorf("rule %d (%s): %w", i, r.Trigger, err)
		}
		if strings.TrimSpace(r.Explanation) == "" {
			return fmt.Errorf("rule %d (%s): explanation cannot be empty", i, r.Trigger)
		}
	}
	return nil
}

// LoadFile reads a YAML rule file. The document is either a sequence of rules or
// a mapping with a top-level "rules" key.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse rule file %s: %w", path, err)
	}

	var raw []Rule
	if len(node.Content) > 0 && node.Content[0].Kind == yaml.MappingNode {
		var doc struct {
			Rules []Rule `yaml:"rules"`
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rule file %s: %w", path, err)
		}
		raw = doc.Rules
	} else if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode rule file %s: %w", path, err)
	}

	for i := range raw {
		raw[i].Category = signal.Category(strings.ToLower(strings.TrimSpace(string(raw[i].Category))))
	}

	set, err := New(raw)
	if err != nil {
		return nil, fmt.Errorf("rule file %s: %w", path, err)
	}
	return set, nil
}
