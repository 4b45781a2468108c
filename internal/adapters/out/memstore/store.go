// Package memstore provides in-memory adapters for the outbound ports. It
// backs local development and tests; the postgres package is the production
// counterpart. The store is safe for concurrent use and pushes a fresh
// snapshot to every subscriber after each successful write.
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const subscriptionBuffer = 16

// Store is an in-memory ports.OrderStore.
type Store struct {
	mu     sync.RWMutex
	orders map[kernel.UUID]*order.Order
	subs   map[*subscription]struct{}
	clock  func() time.Time
}

// NewStore creates an empty store using wall-clock time for new orders.
func NewStore() *Store {
	return &Store{
		orders: make(map[kernel.UUID]*order.Order),
		subs:   make(map[*subscription]struct{}),
		clock:  time.Now,
	}
}

// NewStoreWithClock creates a store with a fixed clock, for tests.
func NewStoreWithClock(clock func() time.Time) *Store {
	s := NewStore()
	s.clock = clock
	return s
}

// CreateOrder persists a new order, assigning its identity and creation
// time.
func (s *Store) CreateOrder(ctx context.Context, o *order.Order) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	id := kernel.NewUUID()
	stored, err := order.RestoreOrder(id, o.OwnerID(), o.Items(), o.Status(), s.clock())
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	s.mu.Lock()
	s.orders[id] = stored
	s.mu.Unlock()

	s.broadcast()
	return id, nil
}

// UpdateStatus replaces the status of a stored order.
func (s *Store) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	s.mu.Lock()
	current, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return errs.NewObjectNotFoundError("id", id)
	}

	updated, err := order.RestoreOrder(
		current.ID(), current.OwnerID(), current.Items(), status, current.CreatedAt())
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}
	s.orders[id] = updated
	s.mu.Unlock()

	s.broadcast()
	return nil
}

// GetOrder returns the order with the given identity.
func (s *Store) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("id", id)
	}
	return o, nil
}

// QueryOrders returns all orders matching the query.
func (s *Store) QueryOrders(ctx context.Context, q ports.OrderQuery) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(q), nil
}

// Subscribe registers a listener that receives the current snapshot
// immediately and a fresh one after every write.
func (s *Store) Subscribe(ctx context.Context, q ports.OrderQuery) (ports.OrderSubscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sub := &subscription{
		store:     s,
		query:     q,
		snapshots: make(chan ports.Snapshot, subscriptionBuffer),
		errors:    make(chan error, 1),
	}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	sub.snapshots <- ports.Snapshot(s.collect(q))
	s.mu.Unlock()

	return sub, nil
}

// collect filters and orders the stored set per q. Callers hold s.mu.
func (s *Store) collect(q ports.OrderQuery) []*order.Order {
	matched := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		if q.Matches(o) {
			matched = append(matched, o)
		}
	}
	sortOrders(matched, q.NewestFirst)

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched
}

// broadcast pushes a fresh snapshot to every live subscriber. A subscriber
// whose buffer is full is considered lost: it gets an error instead and is
// dropped, the same contract a broken network listener would produce.
func (s *Store) broadcast() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for sub := range s.subs {
		select {
		case sub.snapshots <- ports.Snapshot(s.collect(sub.query)):
		default:
			select {
			case sub.errors <- fmt.Errorf("%w: subscriber too slow", ports.ErrSubscriptionLost):
			default:
			}
			delete(s.subs, sub)
		}
	}
}

type subscription struct {
	store     *Store
	query     ports.OrderQuery
	snapshots chan ports.Snapshot
	errors    chan error
	closeOnce sync.Once
}

func (sub *subscription) Snapshots() <-chan ports.Snapshot {
	return sub.snapshots
}

func (sub *subscription) Errors() <-chan error {
	return sub.errors
}

func (sub *subscription) Close() {
	sub.closeOnce.Do(func() {
		// The store lock serializes against broadcast, so nothing can send
		// on the channels once the subscription is removed.
		sub.store.mu.Lock()
		delete(sub.store.subs, sub)
		close(sub.snapshots)
		close(sub.errors)
		sub.store.mu.Unlock()
	})
}
