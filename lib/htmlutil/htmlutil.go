package htmlutil

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// CleanText trims a scraped string down to something comparable:
// non-printable runes dropped, surrounding whitespace removed, inner
// whitespace runs collapsed to a single space.
func CleanText(s string) string {
	var printable strings.Builder
	for _, c := range s {
		if unicode.IsPrint(c) {
			printable.WriteRune(c)
		}
	}
	s = strings.TrimSpace(printable.String())
	return innerWhitespace.ReplaceAllString(s, " ")
}

var kmSuffix = regexp.MustCompile(`\s*km\s*$`)

// ParseDistanceKm parses a rendered distance like "1,234 km".
func ParseDistanceKm(s string) (int, bool) {
	s = kmSuffix.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseAmount parses a rendered currency or stat amount, stripping
// thousands separators ("12,999.50" -> 12999.5).
func ParseAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

var unitSuffix = regexp.MustCompile(`\s*[a-zA-Z]+\s*$`)

// ParseUnitAmount parses an amount with a trailing unit ("12.5 kg").
func ParseUnitAmount(s string) (float64, bool) {
	return ParseAmount(unitSuffix.ReplaceAllString(strings.TrimSpace(s), ""))
}
