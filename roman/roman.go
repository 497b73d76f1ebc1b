// Package roman converts integers to canonical Roman-numeral text.
//
// A Roman value is an immutable wrapper around one integer. Construction is
// total and does no work; range checking happens when text is requested, so
// an out-of-range value can be held and passed around, just not rendered.
//
//	r := roman.From(1994)
//	text, err := r.Text() // "MCMXCIV", nil
//	fmt.Printf("%X", r)   // "MCMXCIV"
//
// Classical notation covers [Min, Max]. There is no symbol for zero, no sign,
// and nothing beyond repeated M, so values outside that range fail with
// ErrInvalidInput or ErrOutOfRange.
package roman

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Bounds of the representable range.
const (
	Min = 1
	Max = 3999
)

var (
	// ErrInvalidInput reports a value with no Roman representation at all:
	// zero or a negative number.
	ErrInvalidInput = errors.New("no roman representation")

	// ErrOutOfRange reports a value above Max.
	ErrOutOfRange = errors.New("value out of range")
)

// table pairs each weight with its glyph, in strictly decreasing weight
// order. The six subtractive compounds (CM, CD, XC, XL, IX, IV) are
// first-class entries; greedy reduction over the full table is what makes
// the output canonical (IX rather than VIIII).
var table = [...]struct {
	weight int
	glyph  string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

// Roman holds one integer for later rendering. The zero value holds 0, which
// fails to render like any other unrepresentable value. Roman is a plain
// value type: safe to copy and to share across goroutines.
type Roman struct {
	value int
}

// From wraps n in a Roman. It always succeeds, whatever n is.
func From(n int) Roman { return Roman{value: n} }

// Int returns the wrapped integer.
func (r Roman) Int() int { return r.value }

// Text renders the canonical uppercase numeral for the wrapped integer.
// The string is recomputed on every call, never cached, and is produced
// whole or not at all: on error the returned string is empty.
func (r Roman) Text() (string, error) {
	switch {
	case r.value < Min:
		return "", fmt.Errorf("roman: cannot encode %d: %w", r.value, ErrInvalidInput)
	case r.value > Max:
		return "", fmt.Errorf("roman: cannot encode %d: %w", r.value, ErrOutOfRange)
	}

	var b strings.Builder
	rest := r.value
	for _, e := range table {
		for rest >= e.weight {
			b.WriteString(e.glyph)
			rest -= e.weight
		}
	}
	return b.String(), nil
}

// Format implements fmt.Formatter. The X verb renders the uppercase numeral;
// v and s do the same. An unrepresentable value or an unsupported verb
// produces a %!-style marker in fmt's convention instead of panicking.
func (r Roman) Format(f fmt.State, verb rune) {
	switch verb {
	case 'X', 'v', 's':
		text, err := r.Text()
		if err != nil {
			fmt.Fprintf(f, "%%!%c(roman.Roman=%d)", verb, r.value)
			return
		}
		_, _ = io.WriteString(f, text)
	default:
		fmt.Fprintf(f, "%%!%c(roman.Roman=%d)", verb, r.value)
	}
}
