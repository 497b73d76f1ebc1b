// Package ternary implements balanced-ternary numerals.
//
// In balanced ternary each digit (a trit) weighs -1, 0, or +1, written
// "-", "0", "+". Unlike the classical Roman system, every int64 has a
// representation, negatives included:
//
//	ternary.From(2).String()  // "+-"  (3 - 1)
//	ternary.From(-1).String() // "-"
//
// A Ternary is immutable after construction and safe to copy and share.
package ternary

import (
	"errors"
	"fmt"
	"strings"
)

// Trit is a single balanced-ternary digit.
type Trit int8

const (
	Minus Trit = -1
	Zero  Trit = 0
	Plus  Trit = 1
)

// Int returns the trit's weight.
func (t Trit) Int() int64 { return int64(t) }

func (t Trit) ascii() byte {
	switch t {
	case Minus:
		return '-'
	case Plus:
		return '+'
	default:
		return '0'
	}
}

func tritFromByte(c byte) (Trit, bool) {
	switch c {
	case '-':
		return Minus, true
	case '0':
		return Zero, true
	case '+':
		return Plus, true
	default:
		return 0, false
	}
}

// ErrSyntax reports input that is not a balanced-ternary string.
var ErrSyntax = errors.New("invalid balanced-ternary syntax")

// Ternary is an immutable balanced-ternary number, most significant trit
// first.
type Ternary struct {
	trits []Trit
}

// From encodes n. Zero encodes as a single Zero trit.
func From(n int64) Ternary {
	if n == 0 {
		return Ternary{trits: []Trit{Zero}}
	}

	var trits []Trit
	for n != 0 {
		switch n % 3 {
		case 0:
			trits = append(trits, Zero)
			n /= 3
		case 1:
			trits = append(trits, Plus)
			n /= 3
		case -2:
			trits = append(trits, Plus)
			n = n/3 - 1
		case 2:
			trits = append(trits, Minus)
			n = n/3 + 1
		case -1:
			trits = append(trits, Minus)
			n /= 3
		}
	}

	// Trits were collected least significant first.
	for i, j := 0, len(trits)-1; i < j; i, j = i+1, j-1 {
		trits[i], trits[j] = trits[j], trits[i]
	}
	return Ternary{trits: trits}
}

// Parse reads a balanced-ternary string made of '-', '0' and '+'. Empty
// input and any other character fail with ErrSyntax.
func Parse(s string) (Ternary, error) {
	if s == "" {
		return Ternary{}, fmt.Errorf("ternary: empty input: %w", ErrSyntax)
	}

	trits := make([]Trit, len(s))
	for i := 0; i < len(s); i++ {
		t, ok := tritFromByte(s[i])
		if !ok {
			return Ternary{}, fmt.Errorf("ternary: unexpected character %q: %w", s[i], ErrSyntax)
		}
		trits[i] = t
	}
	return Ternary{trits: trits}, nil
}

// Int folds the trits back into the integer they denote.
func (t Ternary) Int() int64 {
	var sum int64
	for _, trit := range t.trits {
		sum = sum*3 + trit.Int()
	}
	return sum
}

// String renders the trits as '-', '0' and '+', most significant first.
func (t Ternary) String() string {
	if len(t.trits) == 0 {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(t.trits))
	for _, trit := range t.trits {
		b.WriteByte(trit.ascii())
	}
	return b.String()
}
