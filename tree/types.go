// Package tree defines the node, options and result types of the
// calculator search tree.
package tree

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/calcpath/ops"
)

var (
	// ErrNilRoot is returned when Build is called with a nil root.
	ErrNilRoot = errors.New("tree: root is nil")

	// ErrNegativeMoves indicates a negative move budget.
	ErrNegativeMoves = errors.New("tree: move budget must be non-negative")

	// ErrNilOperation indicates a nil entry in an operation catalog.
	ErrNilOperation = errors.New("tree: nil operation in catalog")

	// ErrNoSolution is returned by Solve when no leaf reaches the target.
	ErrNoSolution = errors.New("tree: no solution")
)

// Node is one reachable calculator state.
//
// A parent owns its Children; Parent is a back reference used only to
// rebuild the path. Nodes are never modified once Build has returned.
type Node struct {
	// Value is the number on the display.
	Value int64

	// Applied is the operation that produced this node; nil at the root.
	Applied ops.Operation

	// Operations is the catalog used to generate children. Nodes share the
	// slice of their parent unless Applied is a ModifyButtons press.
	Operations []ops.Operation

	// RemainingMoves is the move budget left at this node.
	RemainingMoves int

	// Memory is the register, inherited from the parent unless Applied is
	// a Store.
	Memory ops.Register

	// Parent is nil at the root.
	Parent *Node

	// Children in catalog order, populated once by Build.
	Children []*Node

	// Depth is the number of edges from the root, free actions included.
	Depth int
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.Parent == nil }

// Option configures Build and Solve.
type Option func(*Options)

// Options holds the configurable parameters of a tree build.
type Options struct {
	// Ctx allows cancellation; checked once per expanded node.
	Ctx context.Context

	// Warp, if non-nil, is applied after every successful press without
	// costing a move.
	Warp *ops.Warp

	// StoreConsumesMove makes a Store press cost one move. Default false.
	StoreConsumesMove bool

	// Workers > 1 builds the root's subtrees concurrently with at most
	// Workers goroutines. The resulting tree is identical to a sequential
	// build.
	Workers int

	// Logger receives debug records about the build. Defaults to a
	// discarding logger.
	Logger *slog.Logger

	// OnReject, if non-nil, is called for every press that produced no
	// child. It must be safe for concurrent use when Workers > 1.
	OnReject func(parent *Node, op ops.Operation, err error)
}

// DefaultOptions returns Options with a background context, no warp,
// free Store presses, a sequential build and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:               context.Background(),
		Warp:              nil,
		StoreConsumesMove: false,
		Workers:           1,
		Logger:            slog.New(slog.DiscardHandler),
		OnReject:          nil,
	}
}

// WithContext sets the context checked during the build.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWarp installs the automatic warp transform.
func WithWarp(w *ops.Warp) Option {
	return func(o *Options) {
		o.Warp = w
	}
}

// WithStoreConsumesMove selects whether Store costs a move.
func WithStoreConsumesMove(consume bool) Option {
	return func(o *Options) {
		o.StoreConsumesMove = consume
	}
}

// WithParallel builds root subtrees on up to workers goroutines.
// Values below 2 keep the build sequential.
func WithParallel(workers int) Option {
	return func(o *Options) {
		o.Workers = workers
	}
}

// WithLogger sets the debug logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnReject installs a hook observing rejected presses.
func WithOnReject(fn func(parent *Node, op ops.Operation, err error)) Option {
	return func(o *Options) {
		o.OnReject = fn
	}
}

// Stats summarizes a build.
type Stats struct {
	// Nodes counts every node including the root.
	Nodes int

	// Leaves counts nodes with no moves left.
	Leaves int

	// MaxDepth is the deepest Node.Depth reached.
	MaxDepth int

	// Rejected counts rejected presses per reason (see ops.RejectionReason).
	Rejected map[string]int

	// Elapsed is the wall time spent in Build.
	Elapsed time.Duration
}

func newStats() *Stats {
	return &Stats{Rejected: make(map[string]int)}
}

// Rejections returns the total number of rejected presses.
func (s *Stats) Rejections() int {
	total := 0
	for _, c := range s.Rejected {
		total += c
	}

	return total
}

func (s *Stats) merge(o *Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	if o.MaxDepth > s.MaxDepth {
		s.MaxDepth = o.MaxDepth
	}
	for reason, c := range o.Rejected {
		s.Rejected[reason] += c
	}
}

// Result is the outcome of Solve.
type Result struct {
	Start  int64
	Target int64
	Moves  int

	// Steps lists the display names of the solution, root to leaf.
	Steps []string

	// Node is the solution leaf, nil when none was found.
	Node *Node

	// Stats describes the build; non-nil whenever the build ran.
	Stats *Stats
}

// Found reports whether a solution was found.
func (r *Result) Found() bool { return r != nil && r.Node != nil }
