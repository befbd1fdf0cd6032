package model

import "regexp"

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidHHMM reports whether s is a strict HH:MM 24-hour time.
func IsValidHHMM(s string) bool {
	return hhmmPattern.MatchString(s)
}

// ParseHHMM converts HH:MM to minutes since midnight. It accepts the
// same strict format as IsValidHHMM.
func ParseHHMM(s string) (int, bool) {
	if !hhmmPattern.MatchString(s) {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	return h*60 + m, true
}
