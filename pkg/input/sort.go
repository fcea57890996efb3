package input

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmohr/ufelim/pkg/term"
)

// ParseSort reads sorts written as Bool, Int, Real, BitVec<w>, FP<e,s> or
// Array<I,E>.
func ParseSort(s string) (term.Sort, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "Bool":
		return term.Bool, nil
	case "Int":
		return term.Int, nil
	case "Real":
		return term.Real, nil
	}

	name, params, ok := strings.Cut(s, "<")
	if !ok || !strings.HasSuffix(params, ">") {
		return term.Sort{}, fmt.Errorf("unknown sort %q", s)
	}
	parts := splitTopLevel(strings.TrimSuffix(params, ">"))
	switch name {
	case "BitVec":
		if len(parts) != 1 {
			return term.Sort{}, fmt.Errorf("sort %q expects a width", s)
		}
		width, err := strconv.ParseUint(parts[0], 10, 32)
		if err != nil || width == 0 {
			return term.Sort{}, fmt.Errorf("invalid bit-vector width in %q", s)
		}
		return term.BitVec(uint(width)), nil
	case "FP":
		if len(parts) != 2 {
			return term.Sort{}, fmt.Errorf("sort %q expects exponent and significand sizes", s)
		}
		exp, err1 := strconv.ParseUint(parts[0], 10, 32)
		sig, err2 := strconv.ParseUint(parts[1], 10, 32)
		if err1 != nil || err2 != nil || exp < 2 || sig < 2 {
			return term.Sort{}, fmt.Errorf("invalid floating-point format in %q", s)
		}
		return term.FloatingPoint(uint(exp), uint(sig)), nil
	case "Array":
		if len(parts) != 2 {
			return term.Sort{}, fmt.Errorf("sort %q expects index and element sorts", s)
		}
		index, err := ParseSort(parts[0])
		if err != nil {
			return term.Sort{}, err
		}
		elem, err := ParseSort(parts[1])
		if err != nil {
			return term.Sort{}, err
		}
		return term.Array(index, elem), nil
	}
	return term.Sort{}, fmt.Errorf("unknown sort %q", s)
}

func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
