// Package toggle models an optimistic boolean flip as a two-state
// transaction: apply the tentative value immediately, then settle once the
// backend confirms or rejects it.
package toggle

import "time"

// DefaultErrorTTL is how long a failed toggle's notice stays visible
// before the caller clears it.
const DefaultErrorTTL = 3 * time.Second

// Txn tracks a single optimistic flip from start to settlement. It holds
// pure state and performs no I/O; the caller runs the backend call and
// reports the outcome through Resolve.
//
// A Txn is not safe for concurrent use. Settle it on the same loop that
// began it.
type Txn struct {
	snapshot  bool
	tentative bool
	settled   bool
	err       error
}

// Begin starts a transaction that flips current. The caller should display
// Value immediately and kick off the backend call.
func Begin(current bool) *Txn {
	return &Txn{snapshot: current, tentative: !current}
}

// Snapshot returns the value held before the flip.
func (x *Txn) Snapshot() bool {
	return x.snapshot
}

// Tentative returns the optimistically applied value.
func (x *Txn) Tentative() bool {
	return x.tentative
}

// Resolve settles the transaction with the outcome of the backend call and
// reports whether the tentative value was committed. The first call wins;
// later calls are ignored.
func (x *Txn) Resolve(err error) bool {
	if x.settled {
		return x.err == nil
	}
	x.settled = true
	x.err = err
	return err == nil
}

// Settled reports whether the backend outcome has arrived.
func (x *Txn) Settled() bool {
	return x.settled
}

// Err returns the failure that settled the transaction. It is nil while
// the call is still in flight and after a successful settle.
func (x *Txn) Err() error {
	return x.err
}

// Value returns what the caller should display right now: the tentative
// value while in flight or after a commit, the snapshot again after a
// failed settle.
func (x *Txn) Value() bool {
	if x.settled && x.err != nil {
		return x.snapshot
	}
	return x.tentative
}
