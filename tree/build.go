package tree

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/calcpath/ops"
)

// NewRoot returns the root node for a search from start with the given
// move budget and catalog. The catalog slice is copied; the operations in
// it are shared.
func NewRoot(start int64, moves int, catalog []ops.Operation) (*Node, error) {
	if moves < 0 {
		return nil, ErrNegativeMoves
	}
	for i, op := range catalog {
		if op == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilOperation, i)
		}
	}

	return &Node{
		Value:          start,
		Operations:     append([]ops.Operation(nil), catalog...),
		RemainingMoves: moves,
	}, nil
}

// builder carries the state of one build (or one subtree of a parallel build).
type builder struct {
	opts  Options
	stats *Stats
}

// Build expands root eagerly: every node with moves left gets one child
// per operation in its catalog that is not rejected, in catalog order,
// down to the full move budget. There is no pruning by target.
//
// Rejected presses (see ops.IsRejection) produce no child and are only
// counted. Build fails on a nil root, on context cancellation, or when an
// operation returns a non-rejection error.
func Build(root *Node, opts ...Option) (*Stats, error) {
	// 1. Validate input
	if root == nil {
		return nil, ErrNilRoot
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Expand
	start := time.Now()
	b := &builder{opts: o, stats: newStats()}
	b.stats.Nodes = 1
	o.Logger.Debug("tree: build started",
		"start", root.Value, "moves", root.RemainingMoves,
		"buttons", len(root.Operations), "workers", o.Workers)

	var err error
	if o.Workers > 1 {
		err = b.expandParallel(root)
	} else {
		err = b.expand(root)
	}

	// 4. Report
	b.stats.Elapsed = time.Since(start)
	o.Logger.Debug("tree: build finished",
		"nodes", b.stats.Nodes, "leaves", b.stats.Leaves,
		"rejected", b.stats.Rejections(), "elapsed", b.stats.Elapsed, "err", err)

	return b.stats, err
}

// expand generates n's children and recurses into them.
func (b *builder) expand(n *Node) error {
	select {
	case <-b.opts.Ctx.Done():
		return b.opts.Ctx.Err()
	default:
	}

	if n.RemainingMoves <= 0 {
		b.stats.Leaves++
		return nil
	}

	if err := b.spawn(n); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := b.expand(c); err != nil {
			return err
		}
	}

	return nil
}

// expandParallel generates the root's children, then builds each subtree
// on its own goroutine with its own Stats. Children are fixed before the
// workers start, so sibling order is the same as in a sequential build.
func (b *builder) expandParallel(root *Node) error {
	select {
	case <-b.opts.Ctx.Done():
		return b.opts.Ctx.Err()
	default:
	}

	if root.RemainingMoves <= 0 {
		b.stats.Leaves++
		return nil
	}
	if err := b.spawn(root); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(b.opts.Ctx)
	g.SetLimit(b.opts.Workers)

	subs := make([]*Stats, len(root.Children))
	for i, c := range root.Children {
		sub := &builder{opts: b.opts, stats: newStats()}
		sub.opts.Ctx = ctx
		subs[i] = sub.stats
		g.Go(func() error {
			return sub.expand(c)
		})
	}
	err := g.Wait()

	for _, s := range subs {
		b.stats.merge(s)
	}

	return err
}

// spawn fills n.Children.
func (b *builder) spawn(n *Node) error {
	n.Children = make([]*Node, 0, len(n.Operations))
	for i, op := range n.Operations {
		if op == nil {
			return fmt.Errorf("%w: index %d", ErrNilOperation, i)
		}

		c, err := b.press(n, op)
		if err != nil {
			if !ops.IsRejection(err) {
				return fmt.Errorf("tree: %q on %d: %w", op.Name(), n.Value, err)
			}
			b.stats.Rejected[ops.RejectionReason(err)]++
			if b.opts.OnReject != nil {
				b.opts.OnReject(n, op, err)
			}
			continue
		}

		n.Children = append(n.Children, c)
		b.stats.Nodes++
		if c.Depth > b.stats.MaxDepth {
			b.stats.MaxDepth = c.Depth
		}
	}

	return nil
}

// press returns the child produced by pressing op at n, or the reason no
// child exists.
func (b *builder) press(n *Node, op ops.Operation) (*Node, error) {
	c := &Node{
		Applied:        op,
		Operations:     n.Operations,
		RemainingMoves: n.RemainingMoves - 1,
		Memory:         n.Memory,
		Parent:         n,
		Depth:          n.Depth + 1,
	}

	var err error
	switch o := op.(type) {
	case *ops.Store:
		if c.Memory, err = o.Capture(n.Value, n.Memory); err != nil {
			return nil, err
		}
		c.Value = n.Value
		if !b.opts.StoreConsumesMove {
			c.RemainingMoves = n.RemainingMoves
		}
	case *ops.Retrieve:
		if c.Value, err = o.Recall(n.Value, n.Memory); err != nil {
			return nil, err
		}
	case *ops.ModifyButtons:
		c.Value = n.Value
		c.Operations = o.Rewrite(n.Operations)
	default:
		if c.Value, err = op.Apply(n.Value); err != nil {
			return nil, err
		}
	}

	// The warp result is kept even when it lands back on n.Value.
	if b.opts.Warp != nil {
		if c.Value, err = b.opts.Warp.Apply(c.Value); err != nil {
			return nil, err
		}
	}

	return c, nil
}
