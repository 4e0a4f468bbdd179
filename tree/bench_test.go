package tree_test

import (
	"testing"

	"github.com/katalvlaran/calcpath/tree"
)

// benchSpecs is an eight-button catalog with one meta button, six moves deep.
var benchSpecs = []string{"x3", "+4", "-2", "reverse", "<<", "sum", "+-", "[+]1"}

// BenchmarkBuild_Sequential measures a single-goroutine build.
func BenchmarkBuild_Sequential(b *testing.B) {
	catalog := mustParse(b, benchSpecs...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, _ := tree.NewRoot(7, 6, catalog)
		_, _ = tree.Build(root)
	}
}

// BenchmarkBuild_Parallel measures the same build split over root subtrees.
func BenchmarkBuild_Parallel(b *testing.B) {
	catalog := mustParse(b, benchSpecs...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, _ := tree.NewRoot(7, 6, catalog)
		_, _ = tree.Build(root, tree.WithParallel(8))
	}
}

// BenchmarkFindSolution measures the search alone on a prebuilt tree,
// looking for a value that is absent so the whole tree is visited.
func BenchmarkFindSolution(b *testing.B) {
	root, _ := tree.NewRoot(7, 6, mustParse(b, benchSpecs...))
	_, _ = tree.Build(root)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.FindSolution(root, -999999937)
	}
}
