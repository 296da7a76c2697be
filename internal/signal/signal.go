package signal

import (
	"fmt"
	"strings"
)

// Category groups findings so recommendations can be prioritized.
type Category string

const (
	CategoryFinance  Category = "finance"
	CategoryPhishing Category = "phishing"
	CategoryPII      Category = "pii"
	CategoryGeneral  Category = "general"
)

// Priority is the global recommendation order, highest first.
var Priority = []Category{CategoryFinance, CategoryPhishing, CategoryPII, CategoryGeneral}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(value string) (Category, error) {
	candidate := Category(strings.ToLower(strings.TrimSpace(value)))
	for _, c := range Priority {
		if c == candidate {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// Finding captures a single red flag raised by the detector.
type Finding struct {
	Label       string   `json:"label"`
	Explanation string   `json:"explanation"`
	Category    Category `json:"category"`
	Source      string   `json:"source"`
}

// PhraseMatch is a fuzzy hit against a known scam phrase.
type PhraseMatch struct {
	Phrase     string  `json:"phrase"`
	Similarity float64 `json:"similarity"`
}

// CategorySet is the set of distinct categories present in a list of findings.
type CategorySet map[Category]struct{}

// CategoriesOf collects the categories of the given findings.
func CategoriesOf(findings []Finding) CategorySet {
	set := CategorySet{}
	for _, f := range findings {
		set[f.Category] = struct{}{}
	}
	return set
}

// Has reports whether the category is present.
func (s CategorySet) Has(c Category) bool {
	_, ok := s[c]
	return ok
}

// Ordered returns the categories of the set in priority order.
func (s CategorySet) Ordered() []Category {
	var out []Category
	for _, c := range Priority {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
