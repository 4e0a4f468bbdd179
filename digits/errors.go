package digits

import "errors"

var (
	// ErrInvalidDivision indicates a zero divisor or a non-zero remainder.
	ErrInvalidDivision = errors.New("digits: invalid integer division")

	// ErrIllegalShift indicates an attempt to drop the only digit of a number.
	ErrIllegalShift = errors.New("digits: can only shift numbers with at least two digits")

	// ErrDigitOverflow indicates the operand of Mirror has more than MirrorLimit digits.
	ErrDigitOverflow = errors.New("digits: operand too large to mirror")

	// ErrOverflow indicates the result does not fit into int64.
	ErrOverflow = errors.New("digits: integer overflow")

	// ErrMalformedNumber indicates a textual edit produced an unparsable number.
	ErrMalformedNumber = errors.New("digits: malformed number")

	// ErrWarpDiverged indicates Warp did not settle within MaxWarpPasses.
	ErrWarpDiverged = errors.New("digits: warp did not reach a fixed point")

	// ErrInvalidWarp indicates an entry index below 1 or a negative exit index.
	ErrInvalidWarp = errors.New("digits: invalid warp indices")
)
