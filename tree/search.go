package tree

import (
	"github.com/katalvlaran/calcpath/ops"
)

// Walk visits the subtree of root in depth-first pre-order, children in
// catalog order. Returning false from visit stops the walk; Walk then
// reports false as well.
func Walk(root *Node, visit func(n *Node) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	for _, c := range root.Children {
		if !Walk(c, visit) {
			return false
		}
	}

	return true
}

// FindSolution returns the first node, in depth-first pre-order, that has
// no moves left and displays target. It returns nil if there is none.
func FindSolution(root *Node, target int64) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if n.RemainingMoves == 0 && n.Value == target {
			found = n
			return false
		}

		return true
	})

	return found
}

// Chain returns the nodes from just below the root down to n, in order.
// It is empty for a root or nil node.
func Chain(n *Node) []*Node {
	var chain []*Node
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// Path returns the display names of the operations from the root down to n.
func Path(n *Node) []string {
	chain := Chain(n)
	names := make([]string, 0, len(chain))
	for _, c := range chain {
		names = append(names, c.Applied.Name())
	}

	return names
}

// Solve builds the tree for start, moves and catalog and searches it for
// target. If the tree holds no solution, Solve returns the Result (with
// Stats) together with ErrNoSolution.
func Solve(start, target int64, moves int, catalog []ops.Operation, opts ...Option) (*Result, error) {
	root, err := NewRoot(start, moves, catalog)
	if err != nil {
		return nil, err
	}

	res := &Result{Start: start, Target: target, Moves: moves}
	if res.Stats, err = Build(root, opts...); err != nil {
		return res, err
	}

	leaf := FindSolution(root, target)
	if leaf == nil {
		return res, ErrNoSolution
	}
	res.Node = leaf
	res.Steps = Path(leaf)

	return res, nil
}
