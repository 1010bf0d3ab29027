package pricebook

import (
	"strconv"
	"strings"
)

// SanitizePrice reads a price cell the way it is typed in supplier sheets.
//
// Every character that is not a digit or a '.' is dropped ("¥3.50元" reads
// 3.5, "1,200" reads 1200). When several '.' remain, the first one is the
// decimal point and the others are dropped ("1.2.5" reads 1.25). Anything
// that still does not parse, including an empty cell, reads 0.
//
// The sign is dropped too: prices are never negative.
func SanitizePrice(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if first, rest, found := strings.Cut(clean, "."); found {
		clean = first + "." + strings.ReplaceAll(rest, ".", "")
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}
