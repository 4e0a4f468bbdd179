package ops

import (
	"fmt"

	"github.com/katalvlaran/calcpath/digits"
)

// Store copies the current value into the memory register.
type Store struct {
	sealed
}

// NewStore returns a "Store" button.
func NewStore() *Store { return &Store{} }

// Name returns "Store".
func (o *Store) Name() string { return "Store" }

// Kind returns KindStore.
func (o *Store) Kind() Kind { return KindStore }

// Apply returns value unchanged; the effect of Store is on the register.
func (o *Store) Apply(value int64) (int64, error) { return value, nil }

// Capture returns the register after storing value into mem.
// Storing the value the register already holds fails with ErrRedundantStore.
func (o *Store) Capture(value int64, mem Register) (Register, error) {
	if mem.Set && mem.Value == value {
		return mem, ErrRedundantStore
	}

	return Register{Value: value, Set: true}, nil
}

// Retrieve appends the digits held in memory to the value.
type Retrieve struct {
	sealed
}

// NewRetrieve returns a "Retrieve" button.
func NewRetrieve() *Retrieve { return &Retrieve{} }

// Name returns "Retrieve".
func (o *Retrieve) Name() string { return "Retrieve" }

// Kind returns KindRetrieve.
func (o *Retrieve) Kind() Kind { return KindRetrieve }

// Apply always fails with ErrUnsetMemory: without a register there is
// nothing to retrieve. Use Recall.
func (o *Retrieve) Apply(int64) (int64, error) { return 0, ErrUnsetMemory }

// Recall appends the digits of mem to value, as AddDigits would.
func (o *Retrieve) Recall(value int64, mem Register) (int64, error) {
	if !mem.Set {
		return 0, ErrUnsetMemory
	}
	out, err := digits.AddDigits(value, mem.Value)

	return useful(value, out, err)
}

// ModifyButtons is the "[+]n" meta button: it leaves the value alone and
// shifts the parameter of every other MutableParameter button by delta.
type ModifyButtons struct {
	sealed
	delta int64
}

// NewModifyButtons returns a "[+]delta" button.
func NewModifyButtons(delta int64) *ModifyButtons { return &ModifyButtons{delta: delta} }

// Name returns "[+]delta".
func (o *ModifyButtons) Name() string { return fmt.Sprintf("[+]%d", o.delta) }

// Kind returns KindModifyButtons.
func (o *ModifyButtons) Kind() Kind { return KindModifyButtons }

// Delta returns the shift applied to every mutable parameter.
func (o *ModifyButtons) Delta() int64 { return o.delta }

// Apply returns value unchanged; the effect of the press is Rewrite.
func (o *ModifyButtons) Apply(value int64) (int64, error) { return value, nil }

// Rewrite returns a new catalog for the subtree below a press of o.
// Every MutableParameter is replaced in place by a clone shifted by delta
// and every other operation is shared as is. o itself is dropped from its
// position and a fresh copy is appended last, so repeated presses stack
// and the pressed meta button is tried after every other button. catalog
// is not modified.
func (o *ModifyButtons) Rewrite(catalog []Operation) []Operation {
	out := make([]Operation, 0, len(catalog))
	for _, op := range catalog {
		if op == Operation(o) {
			continue
		}
		if m, ok := op.(MutableParameter); ok {
			c := m.Clone()
			c.AddToParameter(o.delta)
			out = append(out, c)
			continue
		}
		out = append(out, op)
	}

	return append(out, NewModifyButtons(o.delta))
}

// Warp is the portal transform applied after every press without costing
// a move. It is configured per search and is never part of a catalog.
type Warp struct {
	sealed
	enter, exit int
}

// NewWarp returns a warp from digit index enter to digit index exit, both
// counted from the right starting at zero.
func NewWarp(enter, exit int) (*Warp, error) {
	if enter < 1 || exit < 0 {
		return nil, fmt.Errorf("%w: enter=%d exit=%d", ErrInvalidWarp, enter, exit)
	}

	return &Warp{enter: enter, exit: exit}, nil
}

// Name returns "Warp".
func (o *Warp) Name() string { return "Warp" }

// Kind returns KindWarp.
func (o *Warp) Kind() Kind { return KindWarp }

// Enter returns the entry digit index.
func (o *Warp) Enter() int { return o.enter }

// Exit returns the exit digit index.
func (o *Warp) Exit() int { return o.exit }

// Apply folds value to its warp fixed point. An unchanged value is not a
// rejection here.
func (o *Warp) Apply(value int64) (int64, error) {
	return digits.Warp(value, o.enter, o.exit)
}
