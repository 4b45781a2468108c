// Package ports defines the contracts between the core and the external
// collaborators it observes the world through: the order store (persistence
// plus change stream) and the identity provider. The core never talks to a
// concrete backend; adapters under internal/adapters implement these
// interfaces.
package ports

import (
	"context"
	"errors"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
)

var (
	// ErrStoreWrite wraps transient or structural write failures of the
	// external store. Callers may retry with backoff for transient cases.
	ErrStoreWrite = errors.New("store write failed")

	// ErrSubscriptionLost wraps delivery failures on a change-stream
	// subscription (permission denial, connectivity loss). It is
	// recoverable: the affected view shows a stale indicator and the feed
	// resubscribes.
	ErrSubscriptionLost = errors.New("subscription lost")
)

// OrderQuery is the predicate pushed down to the store so it pre-filters
// matching documents instead of shipping the whole collection. All fields
// are optional; the zero value matches everything.
type OrderQuery struct {
	// Owner restricts results to orders owned by this customer.
	Owner *kernel.UUID

	// Statuses restricts results to orders in any of these statuses.
	Statuses []order.Status

	// NewestFirst orders results by createdAt descending instead of
	// ascending. Ties are broken by id either way.
	NewestFirst bool

	// Limit caps the number of results; zero means no cap.
	Limit int
}

// Matches reports whether a single order satisfies the predicate, ignoring
// ordering and limit. Adapters without native query support evaluate it
// per document.
func (q OrderQuery) Matches(o *order.Order) bool {
	if o == nil {
		return false
	}
	if q.Owner != nil && !o.OwnerID().IsEqual(*q.Owner) {
		return false
	}
	if len(q.Statuses) > 0 {
		found := false
		for _, s := range q.Statuses {
			if o.Status() == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Snapshot is the full set of orders matching a subscription's predicate at
// one point in time. Reconciliation is full-replace: the receiver discards
// its previous materialized set and keys the snapshot's contents by id.
type Snapshot []*order.Order

// OrderSubscription is a live change stream for one predicate. The caller
// owns cancellation: Close must be called on every exit path, after which
// no further snapshots are delivered and both channels are closed.
type OrderSubscription interface {
	// Snapshots delivers the matching set on subscription start and after
	// every relevant change, in the order the store observed them.
	Snapshots() <-chan Snapshot

	// Errors delivers recoverable delivery failures (wrapped
	// ErrSubscriptionLost). The subscription keeps trying; an error here
	// means the current view may be stale, not that the stream is dead.
	Errors() <-chan error

	// Close terminates the subscription. It is idempotent.
	Close()
}

// OrderStore is the persistence and pub-sub collaborator the whole system
// coordinates through. All operations honor ctx cancellation; none blocks
// beyond it. The store offers no cross-client locking; concurrent writers
// are reconciled by last-write-wins on status, bounded by the monotonic
// transition graph.
type OrderStore interface {
	// CreateOrder persists a new order, assigning its id and createdAt
	// server-side, and returns the assigned id. Fails with a wrapped
	// ErrStoreWrite.
	CreateOrder(ctx context.Context, o *order.Order) (kernel.UUID, error)

	// UpdateStatus sets the status of an existing order. Fails with
	// *errs.ObjectNotFoundError when the id is unknown, otherwise with a
	// wrapped ErrStoreWrite.
	UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error

	// GetOrder fetches a single order by id.
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// QueryOrders runs the predicate once, applying its ordering and
	// limit. Used where live updates are not required.
	QueryOrders(ctx context.Context, q OrderQuery) ([]*order.Order, error)

	// Subscribe opens a change stream for the predicate. The initial
	// snapshot is delivered asynchronously on the returned subscription.
	Subscribe(ctx context.Context, q OrderQuery) (OrderSubscription, error)
}
