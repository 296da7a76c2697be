package advice

import (
	"testing"

	"github.com/example/scamcheck/internal/signal"
	"github.com/stretchr/testify/assert"
)

func set(categories ...signal.Category) signal.CategorySet {
	s := signal.CategorySet{}
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

func TestRecommendEmpty(t *testing.T) {
	assert.Equal(t, []string{StayVigilant}, Recommend(nil))
	assert.Equal(t, []string{StayVigilant}, Recommend(set()))
}

func TestRecommendPriorityOrder(t *testing.T) {
	got := Recommend(set(signal.CategoryGeneral, signal.CategoryPII, signal.CategoryFinance, signal.CategoryPhishing))
	assert.Equal(t, []string{
		Action(signal.CategoryFinance),
		Action(signal.CategoryPhishing),
		Action(signal.CategoryPII),
		Action(signal.CategoryGeneral),
	}, got)
}

func TestRecommendOmitsAbsentCategories(t *testing.T) {
	got := Recommend(set(signal.CategoryGeneral, signal.CategoryPhishing))
	assert.Equal(t, []string{Action(signal.CategoryPhishing), Action(signal.CategoryGeneral)}, got)
}

func TestRecommendEverySubsetKeepsOrder(t *testing.T) {
	all := signal.Priority
	for mask := 1; mask < 1<<len(all); mask++ {
		s := signal.CategorySet{}
		var want []string
		for i, c := range all {
			if mask&(1<<i) != 0 {
				s[c] = struct{}{}
				want = append(want, Action(c))
			}
		}
		assert.Equal(t, want, Recommend(s), "mask %b", mask)
	}
}

func TestEveryCategoryHasAction(t *testing.T) {
	for _, c := range signal.Priority {
		assert.NotEmpty(t, Action(c), c)
	}
}
