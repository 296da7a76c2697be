package signal

import "testing"

func TestParseCategory(t *testing.T) {
	for _, in := range []string{"finance", " Phishing ", "PII", "general"} {
		if _, err := ParseCategory(in); err != nil {
			t.Errorf("ParseCategory(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseCategory("crypto"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCategoriesOfOrdered(t *testing.T) {
	findings := []Finding{
		{Category: CategoryGeneral},
		{Category: CategoryFinance},
		{Category: CategoryGeneral},
	}

	got := CategoriesOf(findings).Ordered()
	if len(got) != 2 || got[0] != CategoryFinance || got[1] != CategoryGeneral {
		t.Fatalf("unexpected ordered categories: %v", got)
	}

	if len(CategoriesOf(nil).Ordered()) != 0 {
		t.Fatal("expected no categories for nil findings")
	}
}
