// numerals converts integers to numeral text on the command line.
//
// Usage:
//
//	numerals [-system roman|ternary] [n ...]
//
// With arguments, each is converted and printed on its own line. Without
// arguments, integers are read from stdin one per line; when stdin is a
// terminal an interactive prompt is shown.
//
// Example session:
//
//	% 1994
//	MCMXCIV
//	% 4000
//	error: roman: cannot encode 4000: value out of range
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/numerals-go/numerals/roman"
	"github.com/numerals-go/numerals/ternary"
)

func main() {
	system := flag.String("system", "roman", "numeral system: roman or ternary")
	flag.Parse()

	convert, err := converter(*system)
	if err != nil {
		fmt.Fprintf(os.Stderr, "numerals: %v\n", err)
		os.Exit(2)
	}

	if flag.NArg() > 0 {
		failed := false
		for _, arg := range flag.Args() {
			text, err := convert(arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "numerals: %v\n", err)
				failed = true
				continue
			}
			fmt.Println(text)
		}
		if failed {
			os.Exit(1)
		}
		return
	}

	runStdin(convert)
}

// converter picks the conversion for the requested system. Both take the
// textual integer so parse errors surface uniformly.
func converter(system string) (func(string) (string, error), error) {
	switch system {
	case "roman":
		return func(arg string) (string, error) {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return "", fmt.Errorf("not an integer: %q", arg)
			}
			return roman.From(n).Text()
		}, nil
	case "ternary":
		return func(arg string) (string, error) {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return "", fmt.Errorf("not a 64-bit integer: %q", arg)
			}
			return ternary.From(n).String(), nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown system %q", system)
	}
}

func runStdin(convert func(string) (string, error)) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("% ")
		}
		if !scanner.Scan() {
			if interactive {
				fmt.Println()
			}
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		text, err := convert(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(text)
	}
}
