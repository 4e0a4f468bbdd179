package ops

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// keywords maps parameterless button specs to their constructors.
var keywords = map[string]func() Operation{
	"reverse":     func() Operation { return NewReverse() },
	"mirror":      func() Operation { return NewMirror() },
	"sum":         func() Operation { return NewSumDigits() },
	"+-":          func() Operation { return NewInvertSign() },
	"inv10":       func() Operation { return NewInv10() },
	"<<":          func() Operation { return NewShiftLeft() },
	"shr":         func() Operation { return NewCircularShiftRight() },
	"shift right": func() Operation { return NewCircularShiftRight() },
	"shl":         func() Operation { return NewCircularShiftLeft() },
	"shift left":  func() Operation { return NewCircularShiftLeft() },
	"store":       func() Operation { return NewStore() },
	"retrieve":    func() Operation { return NewRetrieve() },
}

// patterns are tried in order; each captures the numeric arguments.
var patterns = []struct {
	re    *regexp.Regexp
	build func(m []string) (Operation, error)
}{
	{regexp.MustCompile(`^(?:x|\*|multiply by\s*)\s*(-?\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewMultiplyBy(k), err
	}},
	{regexp.MustCompile(`^(?:/|divide by\s*)\s*(-?\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewDivideBy(k), err
	}},
	{regexp.MustCompile(`^sum with\s*(-?\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewSumWith(k), err
	}},
	{regexp.MustCompile(`^([+-]\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewSumWith(k), err
	}},
	{regexp.MustCompile(`^\[\+\]\s*(-?\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewModifyButtons(k), err
	}},
	{regexp.MustCompile(`^add(?: digits?)?\s+(-?\d+)$`), func(m []string) (Operation, error) {
		k, err := parseInt(m[1])
		return NewAddDigits(k), err
	}},
	{regexp.MustCompile(`^(\d+)\s*=>\s*(\d*)$`), func(m []string) (Operation, error) {
		return NewReplace(m[1], m[2])
	}},
	{regexp.MustCompile(`^replace\s+(\d+)\s+with\s*(\d*)$`), func(m []string) (Operation, error) {
		return NewReplace(m[1], m[2])
	}},
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnknownButton, s, err)
	}

	return v, nil
}

// Parse builds an operation from a button spec. Specs are case-insensitive
// and may be either the short form ("x3", "/2", "+4", "-1", "[+]2",
// "12=>34", "add 1", "shr", "store") or a display name as returned by
// Name ("multiply by 3", "Replace 12 with 34", "Add digit 1").
func Parse(spec string) (Operation, error) {
	s := strings.ToLower(strings.Join(strings.Fields(spec), " "))
	if s == "" {
		return nil, fmt.Errorf("%w: empty spec", ErrUnknownButton)
	}

	if mk, ok := keywords[s]; ok {
		return mk(), nil
	}

	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(s); m != nil {
			op, err := p.build(m)
			if err != nil {
				return nil, err
			}

			return op, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownButton, spec)
}

// ParseAll parses every spec in order. The first failure is returned
// together with its position.
func ParseAll(specs []string) ([]Operation, error) {
	out := make([]Operation, 0, len(specs))
	for i, spec := range specs {
		op, err := Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("ops: button %d: %w", i, err)
		}
		out = append(out, op)
	}

	return out, nil
}

// ParseWarp reads "enter:exit" or "enter,exit" into a Warp.
func ParseWarp(spec string) (*Warp, error) {
	parts := strings.FieldsFunc(spec, func(r rune) bool { return r == ':' || r == ',' })
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWarp, spec)
	}

	enter, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWarp, spec)
	}
	exit, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWarp, spec)
	}

	return NewWarp(enter, exit)
}
