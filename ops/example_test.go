package ops_test

import (
	"fmt"

	"github.com/katalvlaran/calcpath/ops"
)

// ExampleModifyButtons_Rewrite shows a "[+]2" press shifting the other
// buttons for the rest of the path.
func ExampleModifyButtons_Rewrite() {
	catalog, err := ops.ParseAll([]string{"x3", "+4", "+8", "[+]2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	meta := catalog[3].(*ops.ModifyButtons)
	for _, op := range meta.Rewrite(catalog) {
		fmt.Println(op.Name())
	}

	// Output:
	// multiply by 5
	// sum with 6
	// sum with 10
	// [+]2
}

// ExampleParse shows short specs and display names resolving to the same button.
func ExampleParse() {
	a, _ := ops.Parse("12=>34")
	b, _ := ops.Parse("Replace 12 with 34")
	fmt.Println(a.Name() == b.Name())

	v, _ := a.Apply(1212)
	fmt.Println(v)

	// Output:
	// true
	// 3434
}
