package store

import (
	"strconv"
	"strings"

	"github.com/powerfitbr/powerfit/internal/domain"
	"github.com/spf13/cast"
)

// ParsePrice coerces a price field to a float. Prices arrive either as plain
// numbers or as localized currency strings ("R$ 149,90", "R$ 1.234,56").
// Unparseable input coerces to zero, matching the legacy tolerance for
// inconsistent upstream data.
func ParsePrice(p domain.Price) float64 {
	v, _ := parsePrice(string(p))
	return v
}

// ParsePriceStrict reports whether the input was actually parseable, for
// callers that want to log malformed catalog data.
func ParsePriceStrict(p domain.Price) (float64, bool) {
	return parsePrice(string(p))
}

func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Plain numeric forms first.
	if v, err := cast.ToFloat64E(s); err == nil {
		return v, true
	}

	// Strip currency symbols, letters and whitespace.
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == ',', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	// Comma decimal separator: dots are thousands markers.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
