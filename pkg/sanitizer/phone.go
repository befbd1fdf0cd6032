package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatRuPhone normalizes free-typed digits into the canonical display
// form "+7 (XXX) XXX-XX-XX". The formatter is idempotent and reveals
// each separator group only once enough digits exist for it, so it can
// be re-applied on every keystroke.
func FormatRuPhone(input string) string {
	var digits strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	// Drop the country prefix digit; both 8 and 7 are accepted.
	if strings.HasPrefix(d, "8") || strings.HasPrefix(d, "7") {
		d = d[1:]
	}
	if len(d) > 10 {
		d = d[:10]
	}

	p1 := slice(d, 0, 3)
	p2 := slice(d, 3, 6)
	p3 := slice(d, 6, 8)
	p4 := slice(d, 8, 10)

	var out strings.Builder
	out.WriteString("+7")
	if p1 != "" {
		out.WriteString(" (")
		out.WriteString(p1)
		if len(p1) == 3 {
			out.WriteString(")")
		}
	}
	if p2 != "" {
		out.WriteString(" ")
		out.WriteString(p2)
	}
	if p3 != "" {
		out.WriteString("-")
		out.WriteString(p3)
	}
	if p4 != "" {
		out.WriteString("-")
		out.WriteString(p4)
	}
	return out.String()
}

func slice(s string, from, to int) string {
	if from >= len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// IsPlausibleRuPhone reports whether the input parses as a possible
// Russian number. Used as a soft hint only; the wire contract merely
// requires the field to be non-empty.
func IsPlausibleRuPhone(phone string) bool {
	num, err := phonenumbers.Parse(phone, "RU")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}
