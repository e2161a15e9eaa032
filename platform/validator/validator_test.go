package validator

import "testing"

func TestRegionRule(t *testing.T) {
	v := New()

	valid := []string{"BR", "MX", "US"}
	for _, code := range valid {
		if err := v.Var(code, "region"); err != nil {
			t.Errorf("region %q rejected: %v", code, err)
		}
	}

	invalid := []string{"", "B", "BRA", "br", "5X"}
	for _, code := range invalid {
		if err := v.Var(code, "region"); err == nil {
			t.Errorf("region %q accepted, want rejection", code)
		}
	}
}
