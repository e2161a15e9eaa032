// Package vcard rewrites telephone entries in vCard documents so every valid
// number is stored in international format. Numbers resolved to a legacy
// mobile region produce one extra TEL line with the legacy variant.
package vcard

import (
	"regexp"
	"strings"

	"vcard_phone_tools/internal/phone"
)

// telLine matches any telephone field line: "TEL:", "TEL;TYPE=HOME:" and
// grouped forms like "item1.TEL:". Group 1 captures the prefix segment up to
// the colon, group 2 the raw value.
var telLine = regexp.MustCompile(`^(.*TEL(?:;TYPE=[^:]+)?):(.*)$`)

// standardPrefix is the label written on rewritten lines.
const standardPrefix = "TEL;TYPE=CELL"

// Rewriter rewrites TEL lines in vCard text. DefaultRegion supplies parsing
// context for numbers without a country code. With PreserveType set, a
// matched line that already carries a ;TYPE= annotation keeps its original
// prefix segment; otherwise every rewritten line gets the standardized
// TEL;TYPE=CELL label. Alternate lines always use the standardized label.
type Rewriter struct {
	DefaultRegion string
	PreserveType  bool
}

// Stats summarizes one rewrite pass.
type Stats struct {
	Lines      int
	Matched    int
	Rewritten  int
	Alternates int
}

// Rewrite scans doc line by line and returns the rewritten document. Lines
// that do not look like telephone fields, and telephone fields whose value
// cannot be normalized, are copied through byte for byte. Output order
// follows input order; an alternate line immediately follows its primary.
func (rw *Rewriter) Rewrite(doc string) (string, Stats) {
	var (
		b  strings.Builder
		st Stats
	)

	rest := doc
	for rest != "" {
		line, remainder, hasNL := strings.Cut(rest, "\n")
		rest = remainder
		st.Lines++

		m := telLine.FindStringSubmatch(line)
		if m == nil {
			writeLine(&b, line, hasNL)
			continue
		}
		st.Matched++

		res := phone.Normalize(strings.TrimSpace(m[2]), rw.DefaultRegion)
		if res.IsZero() {
			// Matched the field shape but the value did not normalize;
			// never drop the line.
			writeLine(&b, line, hasNL)
			continue
		}
		st.Rewritten++

		b.WriteString(rw.prefixFor(m[1]))
		b.WriteByte(':')
		b.WriteString(res.Primary)
		b.WriteByte('\n')

		if res.Alternate != "" {
			st.Alternates++
			b.WriteString(standardPrefix)
			b.WriteByte(':')
			b.WriteString(res.Alternate)
			b.WriteByte('\n')
		}
	}

	return b.String(), st
}

func (rw *Rewriter) prefixFor(prefix string) string {
	if rw.PreserveType && strings.Contains(prefix, ";TYPE=") {
		return prefix
	}
	return standardPrefix
}

func writeLine(b *strings.Builder, line string, hasNL bool) {
	b.WriteString(line)
	if hasNL {
		b.WriteByte('\n')
	}
}
