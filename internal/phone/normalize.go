// Package phone normalizes telephone numbers found in contact cards.
package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Result holds the canonical representations of a single telephone number.
// Alternate is a second, region-specific variant (the Brazilian legacy mobile
// number without the ninth digit); it is never set without Primary. Empty
// strings mean absent.
type Result struct {
	Primary   string
	Alternate string
}

// IsZero reports whether normalization produced nothing usable.
func (r Result) IsZero() bool {
	return r.Primary == ""
}

// policy applies region-specific post-processing to a validated number.
type policy interface {
	apply(num *phonenumbers.PhoneNumber, formatted string) Result
}

// regionPolicies keys post-processing by the number's resolved region
// (ISO 3166-1 alpha-2). Supporting a new region means adding an entry here;
// the line rewriter never changes.
var regionPolicies = map[string]policy{
	"BR": legacyMobilePolicy{areaDigits: 2},
}

// Normalize parses raw as a phone number, using defaultRegion as context for
// numbers without an explicit country code, and returns the international
// representation plus any region-specific alternate. Numbers that fail to
// parse or that are not possible and valid yield a zero Result; malformed
// input is an expected outcome, never an error.
func Normalize(raw, defaultRegion string) Result {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), defaultRegion)
	if err != nil {
		return Result{}
	}

	if !phonenumbers.IsPossibleNumber(num) || !phonenumbers.IsValidNumber(num) {
		return Result{}
	}

	formatted := phonenumbers.Format(num, phonenumbers.INTERNATIONAL)

	// Resolve the region from the number itself, not the fallback context.
	if p, ok := regionPolicies[phonenumbers.GetRegionCodeForNumber(num)]; ok {
		return p.apply(num, formatted)
	}

	return Result{Primary: formatted}
}

// legacyMobilePolicy handles regions whose mobile numbers carry an extra
// leading subscriber digit not present in older systems. Landline-shaped
// subscribers get the hyphen the formatting library omits; mobile-shaped
// subscribers additionally yield the legacy variant with the extra digit
// dropped.
type legacyMobilePolicy struct {
	areaDigits int
}

func (p legacyMobilePolicy) apply(num *phonenumbers.PhoneNumber, formatted string) Result {
	digits := phonenumbers.GetNationalSignificantNumber(num)
	if len(digits) <= p.areaDigits {
		return Result{Primary: formatted}
	}

	area := digits[:p.areaDigits]
	subscriber := digits[p.areaDigits:]
	cc := num.GetCountryCode()

	switch len(subscriber) {
	case 8:
		return Result{
			Primary: fmt.Sprintf("+%d %s %s-%s", cc, area, subscriber[:4], subscriber[4:]),
		}
	case 9:
		legacy := subscriber[1:]
		return Result{
			Primary:   fmt.Sprintf("+%d %s %s-%s", cc, area, subscriber[:5], subscriber[5:]),
			Alternate: fmt.Sprintf("+%d %s %s-%s", cc, area, legacy[:4], legacy[4:]),
		}
	default:
		return Result{Primary: formatted}
	}
}
