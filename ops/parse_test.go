package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calcpath/ops"
)

func TestParse_ShortForms(t *testing.T) {
	tests := map[string]string{
		"x3":       "multiply by 3",
		"*-2":      "multiply by -2",
		"/5":       "divide by 5",
		"+4":       "sum with 4",
		"-1":       "sum with -1",
		"[+]2":     "[+]2",
		"12=>34":   "Replace 12 with 34",
		"1 => ":    "Replace 1 with ",
		"add 1":    "Add digit 1",
		"reverse":  "reverse",
		"MIRROR":   "mirror",
		"shr":      "shift right",
		"shl":      "shift left",
		"<<":       "<<",
		"sum":      "Sum",
		"+-":       "+-",
		"inv10":    "Inv10",
		" store ":  "Store",
		"retrieve": "Retrieve",
	}
	for spec, name := range tests {
		op, err := ops.Parse(spec)
		require.NoError(t, err, spec)
		assert.Equal(t, name, op.Name(), spec)
	}
}

// TestParse_RoundTrip verifies display names parse back to equal buttons.
func TestParse_RoundTrip(t *testing.T) {
	replace, err := ops.NewReplace("31", "00")
	require.NoError(t, err)

	catalog := []ops.Operation{
		ops.NewMultiplyBy(5), ops.NewDivideBy(-3), ops.NewSumWith(10), ops.NewSumWith(-7),
		ops.NewReverse(), ops.NewMirror(), replace, ops.NewCircularShiftRight(),
		ops.NewCircularShiftLeft(), ops.NewShiftLeft(), ops.NewSumDigits(), ops.NewInvertSign(),
		ops.NewAddDigits(1), ops.NewInv10(), ops.NewStore(), ops.NewRetrieve(), ops.NewModifyButtons(2),
	}
	for _, op := range catalog {
		back, err := ops.Parse(op.Name())
		require.NoError(t, err, op.Name())
		assert.Equal(t, op.Kind(), back.Kind(), op.Name())
		assert.Equal(t, op.Name(), back.Name())
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, spec := range []string{"", "   ", "warp", "x", "replace 1a with 2", "x99999999999999999999"} {
		_, err := ops.Parse(spec)
		assert.ErrorIs(t, err, ops.ErrUnknownButton, spec)
	}
}

func TestParseAll(t *testing.T) {
	catalog, err := ops.ParseAll([]string{"x3", "+4", "+8", "[+]2"})
	require.NoError(t, err)
	require.Len(t, catalog, 4)
	assert.Equal(t, "sum with 8", catalog[2].Name())

	_, err = ops.ParseAll([]string{"x3", "nope"})
	assert.ErrorIs(t, err, ops.ErrUnknownButton)
	assert.Contains(t, err.Error(), "button 1")
}

func TestParseWarp(t *testing.T) {
	w, err := ops.ParseWarp("3:1")
	require.NoError(t, err)
	assert.Equal(t, 3, w.Enter())
	assert.Equal(t, 1, w.Exit())

	w, err = ops.ParseWarp("2, 0")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Enter())

	for _, spec := range []string{"", "2", "a:b", "0:0", "2:-1", "1:2:3"} {
		_, err = ops.ParseWarp(spec)
		assert.ErrorIs(t, err, ops.ErrInvalidWarp, spec)
	}
}
