package digits

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// MirrorLimit is the largest absolute value Mirror accepts.
const MirrorLimit = 999

// signed applies f to |n| and reattaches the sign of n to the result.
// f never sees a negative number, so f's result is non-negative as well.
func signed(n int64, f func(int64) (int64, error)) (int64, error) {
	a, err := abs(n)
	if err != nil {
		return 0, err
	}

	r, err := f(a)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return -r, nil
	}

	return r, nil
}

func abs(n int64) (int64, error) {
	if n == math.MinInt64 {
		return 0, ErrOverflow
	}
	if n < 0 {
		return -n, nil
	}

	return n, nil
}

// parse converts decimal text back into an int64, mapping strconv failures
// onto the package sentinels.
func parse(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow
		}

		return 0, ErrMalformedNumber
	}

	return v, nil
}

func format(n int64) string {
	return strconv.FormatInt(n, 10)
}

func reverseString(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

// Reverse reverses the decimal digits of |n| and reapplies the sign.
// Trailing zeros become leading zeros and vanish: Reverse(120) == 21.
func Reverse(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		return parse(reverseString(format(a)))
	})
}

// Mirror appends the reversed digits of |n| to |n| and reapplies the sign.
// Mirror(123) == 123321, Mirror(20) == 2002.
// Returns ErrDigitOverflow if |n| > MirrorLimit.
func Mirror(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		if a > MirrorLimit {
			return 0, ErrDigitOverflow
		}
		s := format(a)

		return parse(s + reverseString(s))
	})
}

// Replace substitutes every occurrence of old with repl in the signed
// decimal text of n and parses the outcome. Leading zeros produced by the
// edit are dropped: Replace(12345, "12", "0") == 345.
func Replace(n int64, old, repl string) (int64, error) {
	if old == "" {
		return n, nil
	}

	return parse(strings.ReplaceAll(format(n), old, repl))
}

// DivideBy performs exact integer division of n by k.
// The quotient truncates toward zero, so both DivideBy(-15, 3) and
// DivideBy(15, -3) yield -5 while DivideBy(-15, -3) yields 5.
func DivideBy(n, k int64) (int64, error) {
	if k == 0 || n%k != 0 {
		return 0, ErrInvalidDivision
	}
	if n == math.MinInt64 && k == -1 {
		return 0, ErrOverflow
	}

	return n / k, nil
}

// Multiply returns n*k or ErrOverflow.
func Multiply(n, k int64) (int64, error) {
	if n == 0 || k == 0 {
		return 0, nil
	}
	r := n * k
	if r/k != n || (n == -1 && k == math.MinInt64) || (k == -1 && n == math.MinInt64) {
		return 0, ErrOverflow
	}

	return r, nil
}

// Add returns n+k or ErrOverflow.
func Add(n, k int64) (int64, error) {
	r := n + k
	if (k > 0 && r < n) || (k < 0 && r > n) {
		return 0, ErrOverflow
	}

	return r, nil
}

// CircularShiftRight moves the last digit of |n| to the front.
// Leading zeros collapse: CircularShiftRight(500) == 50.
func CircularShiftRight(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		s := format(a)

		return parse(s[len(s)-1:] + s[:len(s)-1])
	})
}

// CircularShiftLeft moves the first digit of |n| to the back.
// Leading zeros collapse: CircularShiftLeft(500) == 5.
func CircularShiftLeft(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		s := format(a)

		return parse(s[1:] + s[:1])
	})
}

// ShiftLeft drops the last digit of |n| (the calculator's "<<" key).
// Returns ErrIllegalShift for single-digit numbers.
func ShiftLeft(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		s := format(a)
		if len(s) == 1 {
			return 0, ErrIllegalShift
		}

		return parse(s[:len(s)-1])
	})
}

// SumDigits returns the sum of the digits of |n| carrying the sign of n.
func SumDigits(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		var sum int64
		for _, c := range format(a) {
			sum += int64(c - '0')
		}

		return sum, nil
	})
}

// AddDigits appends the decimal text of d to the decimal text of n.
// No sign handling takes place: AddDigits(-1, 5) == -15, and a negative d
// yields ErrMalformedNumber because "12-3" is not a number.
func AddDigits(n, d int64) (int64, error) {
	return parse(format(n) + format(d))
}

// Inv10EachDigit replaces every nonzero digit x of |n| with 10-x and keeps
// zeros, then reapplies the sign: Inv10EachDigit(13) == 97,
// Inv10EachDigit(30) == 70.
func Inv10EachDigit(n int64) (int64, error) {
	return signed(n, func(a int64) (int64, error) {
		s := []byte(format(a))
		for i, c := range s {
			if c != '0' {
				s[i] = '0' + (10 - (c - '0'))
			}
		}

		return parse(string(s))
	})
}
