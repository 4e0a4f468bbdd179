package digits_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/digits"
)

// check runs fn on every input and compares against want.
func check(t *testing.T, name string, fn func(int64) (int64, error), cases map[int64]int64) {
	t.Helper()
	for in, want := range cases {
		got, err := fn(in)
		require.NoError(t, err, "%s(%d)", name, in)
		assert.Equal(t, want, got, "%s(%d)", name, in)
	}
}

func TestReverse(t *testing.T) {
	check(t, "Reverse", digits.Reverse, map[int64]int64{
		123:  321,
		-123: -321,
		120:  21,
		21:   12,
		7:    7,
	})
}

// TestReverse_NotAnInvolution shows trailing zeros are lost on the way back.
func TestReverse_NotAnInvolution(t *testing.T) {
	once, err := digits.Reverse(120)
	require.NoError(t, err)
	twice, err := digits.Reverse(once)
	require.NoError(t, err)
	assert.NotEqual(t, int64(120), twice)

	// Without trailing zeros the round trip is exact.
	for _, n := range []int64{123, -4567, 98} {
		once, err = digits.Reverse(n)
		require.NoError(t, err)
		twice, err = digits.Reverse(once)
		require.NoError(t, err)
		assert.Equal(t, n, twice)
	}
}

func TestMirror(t *testing.T) {
	check(t, "Mirror", digits.Mirror, map[int64]int64{
		123:  123321,
		-123: -123321,
		20:   2002,
		999:  999999,
		0:    0,
	})

	_, err := digits.Mirror(1000)
	assert.ErrorIs(t, err, digits.ErrDigitOverflow)
	_, err = digits.Mirror(-1000)
	assert.ErrorIs(t, err, digits.ErrDigitOverflow)
}

func TestReplace(t *testing.T) {
	got, err := digits.Replace(-12345, "34", "99")
	require.NoError(t, err)
	assert.Equal(t, int64(-12995), got)

	got, err = digits.Replace(12345, "12", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(345), got)

	got, err = digits.Replace(2331, "31", "00")
	require.NoError(t, err)
	assert.Equal(t, int64(2300), got)

	// No occurrence leaves the number untouched.
	got, err = digits.Replace(555, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, int64(555), got)

	// Removing every digit leaves nothing to parse.
	_, err = digits.Replace(11, "1", "")
	assert.ErrorIs(t, err, digits.ErrMalformedNumber)
}

func TestDivideBy(t *testing.T) {
	tests := []struct {
		n, k, want int64
	}{
		{15, 3, 5},
		{-15, 3, -5},
		{15, -3, -5},
		{-15, -3, 5},
		{0, 7, 0},
	}
	for _, tc := range tests {
		got, err := digits.DivideBy(tc.n, tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "DivideBy(%d, %d)", tc.n, tc.k)
	}

	_, err := digits.DivideBy(10, 3)
	assert.ErrorIs(t, err, digits.ErrInvalidDivision)
	_, err = digits.DivideBy(10, 0)
	assert.ErrorIs(t, err, digits.ErrInvalidDivision)
	_, err = digits.DivideBy(math.MinInt64, -1)
	assert.ErrorIs(t, err, digits.ErrOverflow)
}

func TestCircularShifts(t *testing.T) {
	check(t, "CircularShiftRight", digits.CircularShiftRight, map[int64]int64{
		351:  135,
		135:  513,
		-351: -135,
		500:  50,
		4:    4,
	})
	check(t, "CircularShiftLeft", digits.CircularShiftLeft, map[int64]int64{
		351:  513,
		513:  135,
		-351: -513,
		500:  5,
	})
}

func TestShiftLeft(t *testing.T) {
	check(t, "ShiftLeft", digits.ShiftLeft, map[int64]int64{
		351:  35,
		135:  13,
		-351: -35,
		10:   1,
	})

	_, err := digits.ShiftLeft(7)
	assert.ErrorIs(t, err, digits.ErrIllegalShift)
	_, err = digits.ShiftLeft(-7)
	assert.ErrorIs(t, err, digits.ErrIllegalShift)
}

func TestSumDigits(t *testing.T) {
	check(t, "SumDigits", digits.SumDigits, map[int64]int64{
		12345:  15,
		6677:   26,
		-12345: -15,
		0:      0,
	})
}

func TestAddDigits(t *testing.T) {
	tests := []struct {
		n, d, want int64
	}{
		{123, 25, 12325},
		{0, 5, 5},
		{5, 0, 50},
		{-1, 5, -15},
	}
	for _, tc := range tests {
		got, err := digits.AddDigits(tc.n, tc.d)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "AddDigits(%d, %d)", tc.n, tc.d)
	}

	_, err := digits.AddDigits(12, -3)
	assert.ErrorIs(t, err, digits.ErrMalformedNumber)
	_, err = digits.AddDigits(math.MaxInt64, 1)
	assert.ErrorIs(t, err, digits.ErrOverflow)
}

func TestInv10EachDigit(t *testing.T) {
	check(t, "Inv10EachDigit", digits.Inv10EachDigit, map[int64]int64{
		0:   0,
		1:   9,
		6:   4,
		5:   5,
		13:  97,
		-13: -97,
		30:  70,
	})
}

func TestMultiplyAndAdd_Overflow(t *testing.T) {
	got, err := digits.Multiply(-4, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(-20), got)

	_, err = digits.Multiply(math.MaxInt64/2+1, 2)
	assert.ErrorIs(t, err, digits.ErrOverflow)
	_, err = digits.Multiply(math.MinInt64, -1)
	assert.ErrorIs(t, err, digits.ErrOverflow)

	got, err = digits.Add(40, -41)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got)

	_, err = digits.Add(math.MaxInt64, 1)
	assert.ErrorIs(t, err, digits.ErrOverflow)
	_, err = digits.Add(math.MinInt64, -1)
	assert.ErrorIs(t, err, digits.ErrOverflow)
}

// TestSignedTransforms_MinInt64 ensures |MinInt64| is reported, not wrapped.
func TestSignedTransforms_MinInt64(t *testing.T) {
	for _, fn := range []func(int64) (int64, error){
		digits.Reverse, digits.Mirror, digits.SumDigits, digits.Inv10EachDigit,
	} {
		_, err := fn(math.MinInt64)
		assert.ErrorIs(t, err, digits.ErrOverflow)
	}
}

func TestWarp(t *testing.T) {
	tests := []struct {
		n           int64
		enter, exit int
		want        int64
	}{
		{1234, 3, 0, 235},
		{6123, 3, 0, 129},
		{991, 2, 0, 1},
		{255255, 3, 1, 375}, // needs a second pass
		{42, 3, 0, 42},      // nothing beyond the entry index
		{-12, 3, 0, -12},    // "-12" fits below the entry index
		{-9, 2, 1, -9},
	}
	for _, tc := range tests {
		got, err := digits.Warp(tc.n, tc.enter, tc.exit)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "Warp(%d, %d, %d)", tc.n, tc.enter, tc.exit)
	}
}

// TestWarp_NegativeBeyondEntry checks a negative value is never folded:
// its sign would have to be read as a digit.
func TestWarp_NegativeBeyondEntry(t *testing.T) {
	for _, tc := range []struct {
		n     int64
		enter int
	}{
		{-1234, 3},
		{-12, 2},
		{-7, 1},
	} {
		_, err := digits.Warp(tc.n, tc.enter, 0)
		assert.ErrorIs(t, err, digits.ErrMalformedNumber, "Warp(%d, %d, 0)", tc.n, tc.enter)
	}
}

func TestWarp_InvalidIndices(t *testing.T) {
	_, err := digits.Warp(1234, 0, 0)
	assert.ErrorIs(t, err, digits.ErrInvalidWarp)
	_, err = digits.Warp(1234, 2, -1)
	assert.ErrorIs(t, err, digits.ErrInvalidWarp)
	_, err = digits.Warp(1234, 2, 19)
	assert.ErrorIs(t, err, digits.ErrOverflow)
}
