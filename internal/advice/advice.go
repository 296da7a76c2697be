package advice

import "github.com/example/scamcheck/internal/signal"

// StayVigilant is returned when no category was triggered.
const StayVigilant = "No specific actions needed, but stay vigilant."

var actions = map[signal.Category]string{
	signal.CategoryFinance:  "Double-check financial requests through official channels before transferring money.",
	signal.CategoryPhishing: "Avoid clicking links or entering credentials until verified.",
	signal.CategoryPII:      "Never share personal data (SSN, bank info, passwords) over untrusted messages.",
	signal.CategoryGeneral:  "Verify requests by calling back on a known number and report to IT/security.",
}

// Action returns the recommendation text for a category.
func Action(c signal.Category) string {
	return actions[c]
}

// Recommend lists the actions for the present categories in priority order.
// The first entry is the top priority. An empty set yields a single StayVigilant entry.
func Recommend(categories signal.CategorySet) []string {
	ordered := categories.Ordered()
	if len(ordered) == 0 {
		return []string{StayVigilant}
	}

	out := make([]string, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, actions[c])
	}
	return out
}
