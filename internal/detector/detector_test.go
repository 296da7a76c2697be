package detector

import (
	"strings"
	"testing"

	"github.com/example/scamcheck/internal/rules"
	"github.com/example/scamcheck/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sources(findings []signal.Finding) []string {
	var out []string
	for _, f := range findings {
		out = append(out, f.Source)
	}
	return out
}

func TestDetectSafeMessage(t *testing.T) {
	d := NewDefault()
	findings := d.Detect("Team, reminder that our all-hands is tomorrow at 10 AM. No action needed.")
	assert.Empty(t, findings)
}

func TestDetectCryptoScam(t *testing.T) {
	d := NewDefault()
	findings := d.Detect("Urgent: Your crypto wallet is compromised. Send Bitcoin to this address to secure your funds.")

	require.Len(t, findings, 3)
	assert.Equal(t, []string{"keyword:urgent", "keyword:crypto", "keyword:bitcoin"}, sources(findings))
	assert.Equal(t, signal.CategoryGeneral, findings[0].Category)
	assert.Equal(t, signal.CategoryFinance, findings[1].Category)
	assert.Equal(t, "Contains suspicious keyword: 'crypto'", findings[1].Label)
}

func TestDetectOrdering(t *testing.T) {
	d := NewDefault()
	// Keywords in reverse table order, then every structural check.
	findings := d.Detect("Immediately wire it, CEO says click here")

	assert.Equal(t, []string{
		"keyword:wire",
		"keyword:immediately",
		CheckCallToAction,
		CheckBrevity,
		CheckAuthority,
	}, sources(findings))
}

func TestDetectRepeatedTriggerReportedOnce(t *testing.T) {
	d := NewDefault()
	findings := d.Detect("urgent urgent URGENT urgent urgent urgent urgent urgent urgent urgent")

	require.Len(t, findings, 1)
	assert.Equal(t, "keyword:urgent", findings[0].Source)
}

func TestDetectBrevityOnly(t *testing.T) {
	d := NewDefault()
	findings := d.Detect("see you at lunch later today")

	require.Len(t, findings, 1)
	assert.Equal(t, CheckBrevity, findings[0].Source)
	assert.Equal(t, signal.CategoryGeneral, findings[0].Category)
}

func TestDetectEmptyTextStillRunsChecks(t *testing.T) {
	d := NewDefault()
	for _, text := range []string{"", "   \n\t "} {
		findings := d.Detect(text)
		require.Len(t, findings, 1)
		assert.Equal(t, CheckBrevity, findings[0].Source)
	}
}

func TestDetectCallToActionSpacing(t *testing.T) {
	d := NewDefault()
	long := " and this padding makes the message long enough to skip brevity"
	for _, phrase := range []string{"CLICK   HERE", "verify\tnow", "Act fast"} {
		findings := d.Detect(phrase + long)
		assert.Contains(t, sources(findings), CheckCallToAction, phrase)
	}
}

func TestDetectAuthorityIsSubstringMatch(t *testing.T) {
	d := NewDefault()
	findings := d.Detect("we will meet three of them on the way through the old park today")
	assert.Equal(t, []string{CheckAuthority}, sources(findings))
}

func TestDetectEveryTriggerYieldsItsCategory(t *testing.T) {
	d := NewDefault()
	for _, r := range rules.Default().Rules() {
		text := "Hello there " + strings.ToUpper(r.Trigger) + " please read this whole message carefully now"
		findings := d.Detect(text)

		var found bool
		for _, f := range findings {
			if f.Source == "keyword:"+r.Trigger {
				found = true
				assert.Equal(t, r.Category, f.Category, r.Trigger)
			}
		}
		assert.True(t, found, "trigger %q not detected", r.Trigger)
	}
}

func TestDetectCustomRuleSet(t *testing.T) {
	set := rules.MustNew([]rules.Rule{
		{Trigger: "refund", Explanation: "Unexpected refunds are a lure.", Category: signal.CategoryFinance},
	})
	d := New(set, nil)

	findings := d.Detect("Your REFUND is ready")
	require.Len(t, findings, 1)
	assert.Equal(t, signal.CategoryFinance, findings[0].Category)

	assert.Empty(t, d.Detect("urgent"))
}
