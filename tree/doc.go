// Package tree searches for a sequence of calculator button presses that
// turns a start value into a target value within a fixed move budget.
//
// What:
//
//   - NewRoot(start, moves, catalog): the root state.
//   - Build(root, opts...): materializes the full tree of reachable states
//     eagerly, one child per non-rejected press, in catalog order.
//   - FindSolution(root, target): depth-first pre-order search for the
//     first node with no moves left that displays target.
//   - Path(node): operation names from the root down to node.
//   - Solve(...): all of the above in one call.
//
// Special presses:
//
//   - Store copies the value into the node's memory register. It costs a
//     move only with WithStoreConsumesMove(true).
//   - Retrieve appends the register's digits to the value.
//   - ModifyButtons ([+]n) costs a move, keeps the value, and gives the
//     child a rewritten catalog: every mutable button is cloned and shifted
//     by n. Sibling subtrees keep their own catalogs.
//   - A Warp installed WithWarp runs after every successful press, free.
//
// Options:
//
//   - WithContext(ctx)           cancellation, checked once per node.
//   - WithWarp(w)                automatic post-press warp.
//   - WithStoreConsumesMove(b)   Store costs a move.
//   - WithParallel(n)            build root subtrees on n goroutines.
//   - WithLogger(l)              debug logging via log/slog.
//   - WithOnReject(fn)           observe rejected presses.
//
// Complexity:
//
//   - Time and memory: O(b^m) nodes for b buttons and m moves; free Store
//     presses add at most one extra level per move.
//
// Errors:
//
//   - ErrNilRoot, ErrNegativeMoves, ErrNilOperation  invalid input.
//   - ErrNoSolution                                  Solve found nothing.
//   - context.Canceled / DeadlineExceeded             build aborted.
//
// Rejected presses (ops.IsRejection) never surface as errors.
package tree
