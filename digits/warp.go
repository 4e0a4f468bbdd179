package digits

// MaxWarpPasses bounds the number of warp passes before Warp gives up.
const MaxWarpPasses = 64

// Warp folds the digits of n that sit at or beyond position enter
// (counted from the right, zero based) back into the number: each such
// digit is multiplied by 10^exit and added to the number formed by the
// remaining low-order digits. The fold is repeated until the value no
// longer changes.
//
//	Warp(1234, 3, 0)   == 234 + 1          == 235
//	Warp(255255, 3, 1) == 255 + 10*(2+5+5) == 375
//	Warp(991, 2, 0)    -> 100 -> 1
//
// The sign is not reapplied: a negative n whose decimal text, minus sign
// included, is no longer than enter is returned unchanged, and any longer
// negative n fails with ErrMalformedNumber because the sign would have to
// be folded as a digit.
//
// Returns ErrInvalidWarp if enter < 1 or exit < 0, ErrOverflow if 10^exit
// or an intermediate sum does not fit, and ErrWarpDiverged if no fixed
// point is reached within MaxWarpPasses passes.
func Warp(n int64, enter, exit int) (int64, error) {
	if enter < 1 || exit < 0 {
		return 0, ErrInvalidWarp
	}

	factor, err := pow10(exit)
	if err != nil {
		return 0, err
	}

	if n < 0 {
		if len(format(n)) > enter {
			return 0, ErrMalformedNumber
		}

		return n, nil
	}

	a := n
	for pass := 0; pass < MaxWarpPasses; pass++ {
		next, err := warpOnce(a, enter, factor)
		if err != nil {
			return 0, err
		}
		if next == a {
			return a, nil
		}
		a = next
	}

	return 0, ErrWarpDiverged
}

// warpOnce performs a single fold of a (a >= 0).
func warpOnce(a int64, enter int, factor int64) (int64, error) {
	s := format(a)
	if len(s) <= enter {
		return a, nil
	}

	cut := len(s) - enter
	out, err := parse(s[cut:])
	if err != nil {
		return 0, err
	}

	var carried int64
	for _, c := range s[:cut] {
		if carried, err = Multiply(factor, int64(c-'0')); err != nil {
			return 0, err
		}
		if out, err = Add(out, carried); err != nil {
			return 0, err
		}
	}

	return out, nil
}

func pow10(e int) (int64, error) {
	p := int64(1)
	for i := 0; i < e; i++ {
		var err error
		if p, err = Multiply(p, 10); err != nil {
			return 0, err
		}
	}

	return p, nil
}
