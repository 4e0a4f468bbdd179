package ops

import (
	"fmt"

	"github.com/katalvlaran/calcpath/digits"
)

// MultiplyBy multiplies the value by its factor.
type MultiplyBy struct {
	sealed
	factor int64
}

// NewMultiplyBy returns a "multiply by k" button.
func NewMultiplyBy(k int64) *MultiplyBy { return &MultiplyBy{factor: k} }

// Name returns the display name with the current factor, e.g. "multiply by k".
func (o *MultiplyBy) Name() string { return fmt.Sprintf("multiply by %d", o.factor) }

// Kind returns KindMultiplyBy.
func (o *MultiplyBy) Kind() Kind { return KindMultiplyBy }

// Apply returns value*factor, ErrOverflow if it does not fit, or
// ErrUselessOperation if the product equals value.
func (o *MultiplyBy) Apply(value int64) (int64, error) {
	out, err := digits.Multiply(value, o.factor)

	return useful(value, out, err)
}

// Parameter returns the current factor.
func (o *MultiplyBy) Parameter() int64 { return o.factor }

// AddToParameter shifts the factor by delta in place.
func (o *MultiplyBy) AddToParameter(delta int64) { o.factor += delta }

// Clone returns an independent copy of o.
func (o *MultiplyBy) Clone() MutableParameter {
	c := *o

	return &c
}

// DivideBy divides the value by its divisor when the division is exact.
type DivideBy struct {
	sealed
	divisor int64
}

// NewDivideBy returns a "divide by k" button.
func NewDivideBy(k int64) *DivideBy { return &DivideBy{divisor: k} }

// Name returns the display name with the current divisor, e.g. "divide by k".
func (o *DivideBy) Name() string { return fmt.Sprintf("divide by %d", o.divisor) }

// Kind returns KindDivideBy.
func (o *DivideBy) Kind() Kind { return KindDivideBy }

// Apply returns value/divisor, or ErrInvalidDivision unless the division
// is exact.
func (o *DivideBy) Apply(value int64) (int64, error) {
	out, err := digits.DivideBy(value, o.divisor)

	return useful(value, out, err)
}

// Parameter returns the current divisor.
func (o *DivideBy) Parameter() int64 { return o.divisor }

// AddToParameter shifts the divisor by delta in place.
func (o *DivideBy) AddToParameter(delta int64) { o.divisor += delta }

// Clone returns an independent copy of o.
func (o *DivideBy) Clone() MutableParameter {
	c := *o

	return &c
}

// SumWith adds its addend to the value. A negative addend subtracts.
type SumWith struct {
	sealed
	addend int64
}

// NewSumWith returns a "sum with k" button.
func NewSumWith(k int64) *SumWith { return &SumWith{addend: k} }

// Name returns the display name with the current addend, e.g. "sum with k".
func (o *SumWith) Name() string { return fmt.Sprintf("sum with %d", o.addend) }

// Kind returns KindSumWith.
func (o *SumWith) Kind() Kind { return KindSumWith }

// Apply returns value+addend; a zero addend is useless.
func (o *SumWith) Apply(value int64) (int64, error) {
	out, err := digits.Add(value, o.addend)

	return useful(value, out, err)
}

// Parameter returns the current addend.
func (o *SumWith) Parameter() int64 { return o.addend }

// AddToParameter shifts the addend by delta in place.
func (o *SumWith) AddToParameter(delta int64) { o.addend += delta }

// Clone returns an independent copy of o.
func (o *SumWith) Clone() MutableParameter {
	c := *o

	return &c
}

// AddDigits appends the decimal digits of its parameter to the value.
type AddDigits struct {
	sealed
	digits int64
}

// NewAddDigits returns an "Add digit d" button. A negative d is accepted
// but every press is rejected with ErrMalformedNumber.
func NewAddDigits(d int64) *AddDigits { return &AddDigits{digits: d} }

// Name returns the display name with the current appended number, e.g. "Add digit d".
func (o *AddDigits) Name() string { return fmt.Sprintf("Add digit %d", o.digits) }

// Kind returns KindAddDigits.
func (o *AddDigits) Kind() Kind { return KindAddDigits }

// Apply appends the digits; see digits.AddDigits for sign handling.
func (o *AddDigits) Apply(value int64) (int64, error) {
	out, err := digits.AddDigits(value, o.digits)

	return useful(value, out, err)
}

// Parameter returns the current appended number.
func (o *AddDigits) Parameter() int64 { return o.digits }

// AddToParameter shifts the appended number by delta in place.
func (o *AddDigits) AddToParameter(delta int64) { o.digits += delta }

// Clone returns an independent copy of o.
func (o *AddDigits) Clone() MutableParameter {
	c := *o

	return &c
}

// Replace substitutes a digit pattern in the decimal text of the value.
type Replace struct {
	sealed
	old, repl string
}

// NewReplace returns a "Replace old with repl" button. old must be a
// non-empty digit string; repl must consist of digits and may be empty.
func NewReplace(old, repl string) (*Replace, error) {
	if old == "" || !isDigits(old) || !isDigits(repl) {
		return nil, fmt.Errorf("%w: %q => %q", ErrInvalidReplace, old, repl)
	}

	return &Replace{old: old, repl: repl}, nil
}

// Name returns "Replace old with repl".
func (o *Replace) Name() string { return fmt.Sprintf("Replace %s with %s", o.old, o.repl) }

// Kind returns KindReplace.
func (o *Replace) Kind() Kind { return KindReplace }

// Apply rewrites every occurrence of the pattern. A value without one is
// a useless press.
func (o *Replace) Apply(value int64) (int64, error) {
	out, err := digits.Replace(value, o.old, o.repl)

	return useful(value, out, err)
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// Unary covers the parameterless digit transforms. Its kind selects the
// transform; it carries no other state and is safe to share.
type Unary struct {
	sealed
	kind Kind
}

var unaryNames = map[Kind]string{
	KindReverse:            "reverse",
	KindMirror:             "mirror",
	KindCircularShiftRight: "shift right",
	KindCircularShiftLeft:  "shift left",
	KindShiftLeft:          "<<",
	KindSumDigits:          "Sum",
	KindInvertSign:         "+-",
	KindInv10:              "Inv10",
}

// NewReverse returns the "reverse" button: digits of |v| reversed.
func NewReverse() *Unary { return &Unary{kind: KindReverse} }

// NewMirror returns the "mirror" button: |v| followed by its reversal.
func NewMirror() *Unary { return &Unary{kind: KindMirror} }

// NewCircularShiftRight returns the "shift right" button: 351 becomes 135.
func NewCircularShiftRight() *Unary { return &Unary{kind: KindCircularShiftRight} }

// NewCircularShiftLeft returns the "shift left" button: 351 becomes 513.
func NewCircularShiftLeft() *Unary { return &Unary{kind: KindCircularShiftLeft} }

// NewShiftLeft returns the "<<" button, which drops the last digit.
func NewShiftLeft() *Unary { return &Unary{kind: KindShiftLeft} }

// NewSumDigits returns the "Sum" button: the digit sum of |v|.
func NewSumDigits() *Unary { return &Unary{kind: KindSumDigits} }

// NewInvertSign returns the "+-" button.
func NewInvertSign() *Unary { return &Unary{kind: KindInvertSign} }

// NewInv10 returns the "Inv10" button: every nonzero digit x becomes 10-x.
func NewInv10() *Unary { return &Unary{kind: KindInv10} }

// Name returns the fixed display name of the transform.
func (o *Unary) Name() string { return unaryNames[o.kind] }

// Kind returns the transform selected at construction.
func (o *Unary) Kind() Kind { return o.kind }

// Apply runs the transform. Sign-preserving transforms work on |value|.
func (o *Unary) Apply(value int64) (int64, error) {
	var (
		out int64
		err error
	)
	switch o.kind {
	case KindReverse:
		out, err = digits.Reverse(value)
	case KindMirror:
		out, err = digits.Mirror(value)
	case KindCircularShiftRight:
		out, err = digits.CircularShiftRight(value)
	case KindCircularShiftLeft:
		out, err = digits.CircularShiftLeft(value)
	case KindShiftLeft:
		out, err = digits.ShiftLeft(value)
	case KindSumDigits:
		out, err = digits.SumDigits(value)
	case KindInvertSign:
		out, err = digits.Multiply(value, -1)
	case KindInv10:
		out, err = digits.Inv10EachDigit(value)
	default:
		return 0, fmt.Errorf("ops: unary kind %s not supported", o.kind)
	}

	return useful(value, out, err)
}
