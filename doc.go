// Package calcpath solves calculator puzzles: starting from a displayed
// value, find the sequence of button presses that spends a move budget
// exactly and leaves the target on the display.
//
// The work is split over small packages:
//
//	digits/  pure decimal-digit arithmetic (reverse, mirror, shifts, warp)
//	ops/     the buttons: a sealed Operation family plus a spec parser
//	tree/    exhaustive bounded-depth search tree, sequential or parallel
//	level/   YAML level files and the bundled sample levels
//
// Quick example:
//
//	catalog, _ := ops.ParseAll([]string{"x3", "+4", "+8", "[+]2"})
//	res, err := tree.Solve(5, 41, 4, catalog)
//	// res.Steps == ["[+]2", "multiply by 5", "sum with 6", "sum with 10"]
//
// The calcpath command in cmd/calcpath wraps the same engine with config
// files, logging and Prometheus textfile metrics.
package calcpath
