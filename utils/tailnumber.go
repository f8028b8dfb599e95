// utils/tailnumber.go
package utils

import "strings"

// maxTailNumberLen is the length of the n_number column in the aircraft
// table. FAA master records carry the registration mark without the
// country prefix, so five characters covers every US registration.
const maxTailNumberLen = 5

// NormalizeTailNumber converts user- or file-supplied tail numbers
// (e.g. "n538cd", " N538CD ", "538CD") to the canonical form stored as
// the aircraft primary key: trimmed, upper-cased, leading "N"s
// stripped, capped at five characters. Registration marks never start
// with N after the country prefix, so stripping every leading N keeps
// the function idempotent even on doubled-prefix input.
func NormalizeTailNumber(tail string) string {
	t := strings.ToUpper(strings.TrimSpace(tail))
	t = strings.TrimLeft(t, "N")
	if len(t) > maxTailNumberLen {
		t = t[:maxTailNumberLen]
	}
	return t
}
