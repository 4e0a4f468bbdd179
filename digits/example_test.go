package digits_test

import (
	"fmt"

	"github.com/katalvlaran/calcpath/digits"
)

// ExampleWarp shows the portal folding the high digits back into the low
// ones until nothing is left beyond the entry index.
func ExampleWarp() {
	// 255255 -> 255 + 10*(2+5+5) = 375, which has no digit at index 3.
	v, err := digits.Warp(255255, 3, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)

	// Output:
	// 375
}

// ExampleMirror shows that the sign is kept outside of the mirrored digits.
func ExampleMirror() {
	v, _ := digits.Mirror(-123)
	fmt.Println(v)

	// Output:
	// -123321
}
