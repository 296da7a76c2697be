package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/example/scamcheck/internal/analysis"
	"github.com/example/scamcheck/internal/signal"
)

var categoryTags = map[signal.Category]string{
	signal.CategoryFinance:  "[finance]",
	signal.CategoryPhishing: "[phishing]",
	signal.CategoryPII:      "[pii]",
	signal.CategoryGeneral:  "[general]",
}

func renderText(w io.Writer, res analysis.Result) {
	fmt.Fprintf(w, "Risk Score: %d/100 - %s\n", res.Score, res.Level.Label())

	fmt.Fprintln(w, "\nPotential warning flags:")
	if len(res.Findings) == 0 {
		fmt.Fprintln(w, "  No obvious red flags detected.")
	}
	for _, f := range res.Findings {
		fmt.Fprintf(w, "  %-11s %s\n", categoryTags[f.Category], f.Label)
		fmt.Fprintf(w, "  %-11s %s\n", "", f.Explanation)
	}

	fmt.Fprintln(w, "\nSimilarity to known scam phrases:")
	if len(res.Matches) == 0 {
		fmt.Fprintln(w, "  No strong similarity to known scam phrases.")
	}
	for _, m := range res.Matches {
		fmt.Fprintf(w, "  Similar to: '%s' (similarity: %.2f)\n", m.Phrase, m.Similarity)
	}

	fmt.Fprintln(w, "\nRecommended next steps:")
	for i, rec := range res.Recommendations {
		prefix := "  ->"
		if i == 0 {
			prefix = "  !!"
		}
		fmt.Fprintf(w, "%s %s\n", prefix, rec)
	}
}

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func render(w io.Writer, output string, results []analysis.Result) error {
	if output == "json" {
		if len(results) == 1 {
			return renderJSON(w, results[0])
		}
		return renderJSON(w, results)
	}

	for i, res := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== Message %d: %s\n", i+1, excerpt(res.Text, 60))
		}
		renderText(w, res)
	}
	return nil
}

func excerpt(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
