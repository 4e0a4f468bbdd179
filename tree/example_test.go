package tree_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/calcpath/ops"
	"github.com/katalvlaran/calcpath/tree"
)

// ExampleSolve finds a four-press path from 5 to 41. Pressing "[+]2"
// first turns x3, +4 and +8 into x5, +6 and +10 for the rest of the path:
//
//	5 --[+]2--> 5 --x5--> 25 --+6--> 31 --+10--> 41
func ExampleSolve() {
	catalog, err := ops.ParseAll([]string{"x3", "+4", "+8", "[+]2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := tree.Solve(5, 41, 4, catalog)
	if errors.Is(err, tree.ErrNoSolution) {
		fmt.Println("no solution")
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(strings.Join(res.Steps, " | "))

	// Output:
	// [+]2 | multiply by 5 | sum with 6 | sum with 10
}

// ExampleFindSolution walks the three stages by hand, with a warp that
// folds the hundreds digit back onto the units.
func ExampleFindSolution() {
	warp, _ := ops.NewWarp(2, 0)
	root, _ := tree.NewRoot(99, 3, []ops.Operation{ops.NewAddDigits(1), ops.NewSumWith(-1)})
	if _, err := tree.Build(root, tree.WithWarp(warp)); err != nil {
		fmt.Println("error:", err)
		return
	}

	leaf := tree.FindSolution(root, 10)
	for _, step := range tree.Path(leaf) {
		fmt.Println(step)
	}

	// Output:
	// Add digit 1
	// Add digit 1
	// sum with -1
}
