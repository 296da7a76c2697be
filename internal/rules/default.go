package rules

import "github.com/example/scamcheck/internal/signal"

var defaultRules = []Rule{
	{"urgent", "Urgent language often creates pressure to act fast.", signal.CategoryGeneral},
	{"transfer", "Requests for transfers can indicate payment fraud.", signal.CategoryFinance},
	{"wire", "Wire transfers are common in business email compromise scams.", signal.CategoryFinance},
	{"password", "Asking for passwords is a phishing red flag.", signal.CategoryPhishing},
	{"account locked", "Fake account lockouts are used to scare users.", signal.CategoryPhishing},
	{"gift cards", "Gift card scams are common – asking you to buy cards.", signal.CategoryFinance},
	{"crypto", "Crypto is hard to trace and is used by scammers.", signal.CategoryFinance},
	{"bitcoin", "Bitcoin requests often indicate scams.", signal.CategoryFinance},
	{"bank details", "Scammers may ask for bank details for fraud.", signal.CategoryFinance},
	{"social security", "Never share SSNs in chat – ID theft risk.", signal.CategoryPII},
	{"confidential", "Emphasizing secrecy is a manipulation tactic.", signal.CategoryGeneral},
	{"secret", "Secrecy requests may be social engineering.", signal.CategoryGeneral},
	{"verification", "Fake verification links steal credentials.", signal.CategoryPhishing},
	{"reset", "Password reset prompts may be phishing.", signal.CategoryPhishing},
	{"immediately", "Urgency tries to bypass critical thinking.", signal.CategoryGeneral},
}

// Default returns the built-in keyword table.
func Default() *Set {
	return MustNew(defaultRules)
}
