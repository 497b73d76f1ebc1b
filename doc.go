// Package numerals is the umbrella for a small family of numeral-system
// encoders.
//
// # Overview
//
// Each system lives in its own package:
//
//   - roman: integers to canonical uppercase Roman numerals, with the
//     subtractive compounds (IV, IX, XL, XC, CD, CM) as first-class symbols.
//   - ternary: balanced-ternary numerals over the full int64 range,
//     including parsing back from text.
//
// # Quick start
//
//	import "github.com/numerals-go/numerals/roman"
//
//	text, err := roman.From(1994).Text() // "MCMXCIV"
//	fmt.Printf("%X", roman.From(134))    // "CXXXIV"
//
// The value types are immutable and render lazily: constructing one never
// fails and never allocates text, and formatting recomputes the string on
// every call. Values outside a system's representable range are reported as
// errors at formatting time, never clamped or truncated.
//
// Two binaries ship with the module: numerals (CLI) and numerals-httpd
// (HTTP service with prometheus metrics); see their package documentation
// under cmd/.
package numerals
