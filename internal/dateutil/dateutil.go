// Package dateutil turns user date formats ("DD/MM/YYYY", "auto:long")
// into formatted dates for document snippets.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength bounds the length of a user format.
const MaxFormatLength = 50

// DefaultFormat is applied to a bare "auto".
const DefaultFormat = "YYYY-MM-DD"

const autoKeyword = "auto"

// tokens are tried in order at each position; longer tokens come first
// so "MMMM" wins over "MM".
var tokens = []struct {
	user   string
	layout string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"dddd", "Monday"},
	{"MMM", "Jan"},
	{"ddd", "Mon"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"M", "1"},
	{"D", "2"},
}

// Presets are named formats usable after "auto:".
var Presets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"full":     "dddd, MMMM D, YYYY",
}

// Layout converts a user format into a Go time layout.
//
// Tokens: YYYY YY MMMM MMM MM M DD D dddd ddd HH mm.
// Text inside brackets is kept verbatim: "[Week of] D MMM".
// Everything else passes through unchanged.
func Layout(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: empty format", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(rest[1:end])
			rest = rest[end+1:]
			continue
		}
		if layout, n := matchToken(rest); n > 0 {
			b.WriteString(layout)
			rest = rest[n:]
			continue
		}
		b.WriteByte(rest[0])
		rest = rest[1:]
	}
	return b.String(), nil
}

func matchToken(s string) (string, int) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.user) {
			return tok.layout, len(tok.user)
		}
	}
	return "", 0
}

// Resolve expands a configured date value against now.
//
//	"auto"         -> now in DefaultFormat
//	"auto:FORMAT"  -> now in FORMAT, or in the named preset
//	anything else  -> returned as is
//
// The keyword and preset names are case-insensitive.
func Resolve(value string, now time.Time) (string, error) {
	if len(value) < len(autoKeyword) || !strings.EqualFold(value[:len(autoKeyword)], autoKeyword) {
		return value, nil
	}

	format := DefaultFormat
	if suffix := value[len(autoKeyword):]; suffix != "" {
		spec, ok := strings.CutPrefix(suffix, ":")
		if !ok {
			return "", fmt.Errorf("%w: %q: use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		if spec == "" {
			return "", fmt.Errorf("%w: %q: missing format after \"auto:\"", ErrInvalidDateFormat, value)
		}
		format = spec
		if preset, ok := Presets[strings.ToLower(spec)]; ok {
			format = preset
		}
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return now.Format(layout), nil
}
