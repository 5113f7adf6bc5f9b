package validation

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/orbit-connect/orbitcore/internal/domain/search/field"
)

func isFalsy(v any) bool { return field.IsZero(v) }

// text renders a raw form value; nil reads as "".
func text(v any) string { return field.String(v) }

// length counts characters as Unicode code points.
func length(v any) int { return utf8.RuneCountInString(text(v)) }

// number reads numeric kinds and numeric strings.
func number(v any) (float64, bool) {
	if n, ok := field.Number(v); ok {
		return n, !math.IsNaN(n)
	}
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// isAbsoluteURL accepts values with a scheme; web schemes also need a host.
func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}
	if hierarchicalSchemes[strings.ToLower(u.Scheme)] && u.Host == "" {
		return false
	}
	return true
}
