package detector

import "fmt"

// Registry maps check names to constructors.
type Registry map[string]Factory

// Factory builds a check instance.
type Factory func() Check

// Order is the canonical evaluation order of the built-in checks.
var Order = []string{CheckCallToAction, CheckBrevity, CheckAuthority}

// DefaultRegistry contains built-in checks.
var DefaultRegistry = Registry{
	CheckCallToAction: callToActionCheck,
	CheckBrevity:      brevityCheck,
	CheckAuthority:    authorityCheck,
}

// BuildChecks instantiates the named checks. Built-in names are always returned
// in canonical order regardless of the order requested; other registered names
// follow in request order.
func (r Registry) BuildChecks(names []string) ([]Check, error) {
	if len(names) == 0 {
		return nil, nil
	}

	requested := map[string]struct{}{}
	var extra []string
	for _, name := range names {
		if _, ok := r[name]; !ok {
			return nil, fmt.Errorf("unknown check: %s", name)
		}
		if _, dup := requested[name]; dup {
			continue
		}
		requested[name] = struct{}{}
		if !isBuiltin(name) {
			extra = append(extra, name)
		}
	}

	var checks []Check
	for _, name := range Order {
		if _, ok := requested[name]; ok {
			checks = append(checks, r[name]())
		}
	}
	for _, name := range extra {
		checks = append(checks, r[name]())
	}
	return checks, nil
}

func isBuiltin(name string) bool {
	for _, n := range Order {
		if n == name {
			return true
		}
	}
	return false
}
