package ops

import (
	"errors"

	"github.com/katalvlaran/calcpath/digits"
)

// Kind enumerates the operation variants.
type Kind int

const (
	KindMultiplyBy Kind = iota
	KindDivideBy
	KindSumWith
	KindReverse
	KindMirror
	KindReplace
	KindCircularShiftRight
	KindCircularShiftLeft
	KindShiftLeft
	KindSumDigits
	KindInvertSign
	KindAddDigits
	KindInv10
	KindStore
	KindRetrieve
	KindModifyButtons
	KindWarp
)

var kindNames = [...]string{
	KindMultiplyBy:         "multiply",
	KindDivideBy:           "divide",
	KindSumWith:            "sum",
	KindReverse:            "reverse",
	KindMirror:             "mirror",
	KindReplace:            "replace",
	KindCircularShiftRight: "shift_right",
	KindCircularShiftLeft:  "shift_left",
	KindShiftLeft:          "truncate",
	KindSumDigits:          "sum_digits",
	KindInvertSign:         "invert_sign",
	KindAddDigits:          "add_digits",
	KindInv10:              "inv10",
	KindStore:              "store",
	KindRetrieve:           "retrieve",
	KindModifyButtons:      "modify_buttons",
	KindWarp:               "warp",
}

// String returns a stable snake_case label, suitable for metrics.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Operation is a single calculator button.
type Operation interface {
	// Name returns the display name, e.g. "sum with 4".
	Name() string

	// Kind reports the variant.
	Kind() Kind

	// Apply transforms value. It returns ErrUselessOperation when the
	// result would equal value, or another rejection sentinel.
	Apply(value int64) (int64, error)

	operation()
}

// MutableParameter is implemented by operations whose numeric parameter
// can be shifted by ModifyButtons.
type MutableParameter interface {
	Operation

	// Parameter returns the current parameter.
	Parameter() int64

	// AddToParameter shifts the parameter by delta in place.
	AddToParameter(delta int64)

	// Clone returns an independent copy.
	Clone() MutableParameter
}

// Register is the calculator's memory slot.
type Register struct {
	Value int64
	Set   bool
}

// sealed closes the Operation interface to this package.
type sealed struct{}

func (sealed) operation() {}

var (
	// ErrUselessOperation indicates the press would leave the value unchanged.
	ErrUselessOperation = errors.New("ops: useless operation")

	// ErrRedundantStore indicates the value is already held in memory.
	ErrRedundantStore = errors.New("ops: value already stored")

	// ErrUnsetMemory indicates Retrieve was pressed before any Store.
	ErrUnsetMemory = errors.New("ops: memory is empty")

	// ErrUnknownButton indicates a button spec that Parse cannot read.
	ErrUnknownButton = errors.New("ops: unknown button")

	// ErrInvalidReplace indicates Replace patterns that are not digit strings.
	ErrInvalidReplace = errors.New("ops: replace patterns must be digits")

	// Numeric rejections raised by package digits.
	ErrInvalidDivision = digits.ErrInvalidDivision
	ErrIllegalShift    = digits.ErrIllegalShift
	ErrDigitOverflow   = digits.ErrDigitOverflow
	ErrOverflow        = digits.ErrOverflow
	ErrMalformedNumber = digits.ErrMalformedNumber
	ErrWarpDiverged    = digits.ErrWarpDiverged
	ErrInvalidWarp     = digits.ErrInvalidWarp
)

// rejections maps every recoverable sentinel to its reason label.
var rejections = []struct {
	err    error
	reason string
}{
	{ErrUselessOperation, "useless"},
	{ErrInvalidDivision, "invalid_division"},
	{ErrIllegalShift, "illegal_shift"},
	{ErrRedundantStore, "redundant_store"},
	{ErrDigitOverflow, "digit_overflow"},
	{ErrUnsetMemory, "unset_memory"},
	{ErrOverflow, "overflow"},
	{ErrMalformedNumber, "malformed_number"},
	{ErrWarpDiverged, "warp_diverged"},
}

// IsRejection reports whether err is an expected, recoverable refusal to
// produce a new value.
func IsRejection(err error) bool {
	return RejectionReason(err) != ""
}

// RejectionReason returns a short label for a rejection sentinel, or ""
// when err is nil or not a rejection.
func RejectionReason(err error) string {
	if err == nil {
		return ""
	}
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}

	return ""
}

// useful returns ErrUselessOperation if out equals in, otherwise out.
func useful(in, out int64, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	if out == in {
		return 0, ErrUselessOperation
	}

	return out, nil
}
