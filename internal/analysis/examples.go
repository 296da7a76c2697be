package analysis

import (
	"fmt"
	"strings"
)

// Example is a canned message used to try the analyzer.
type Example struct {
	Name string
	Text string
}

// Examples lists the built-in sample messages.
var Examples = []Example{
	{Name: "CEO Fraud", Text: "Hello, this is your CEO. Please transfer $25,000 to a new vendor immediately. Do not tell anyone until this is done."},
	{Name: "Phishing Link", Text: "We detected a problem with your account. Click here to verify and reset your password."},
	{Name: "Crypto Scam", Text: "Urgent: Your crypto wallet is compromised. Send Bitcoin to this address to secure your funds."},
	{Name: "Safe Message", Text: "Team, reminder that our all-hands is tomorrow at 10 AM. No action needed."},
}

// LookupExample finds an example by name, ignoring case, spaces and dashes.
func LookupExample(name string) (Example, error) {
	key := exampleKey(name)
	for _, ex := range Examples {
		if exampleKey(ex.Name) == key {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("unknown example %q", name)
}

func exampleKey(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}
