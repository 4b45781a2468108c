package watch_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"comanda/internal/adapters/out/memstore"
	"comanda/internal/core/application/watch"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func identityView(orders []*order.Order) []*order.Order {
	return orders
}

func submitOrder(t *testing.T, store *memstore.Store, owner kernel.UUID) kernel.UUID {
	t.Helper()

	item, err := order.NewItem("Burger", 8.50)
	require.NoError(t, err)
	o, err := order.NewOrder(owner, []order.Item{item})
	require.NoError(t, err)

	id, err := store.CreateOrder(t.Context(), o)
	require.NoError(t, err)
	return id
}

// receiveView drains Updates until the predicate holds or the timeout
// expires. Intermediate views may be dropped by design, so only the
// converged state is asserted.
func receiveView(
	t *testing.T,
	feed *watch.Feed,
	accept func([]*order.Order) bool,
) []*order.Order {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case view, open := <-feed.Updates():
			require.True(t, open, "feed stopped before converging")
			if accept(view) {
				return view
			}
		case <-deadline:
			t.Fatal("feed did not converge in time")
			return nil
		}
	}
}

func TestFeed_DeliversAndConverges(t *testing.T) {
	store := memstore.NewStore()
	owner := kernel.NewUUID()
	submitOrder(t, store, owner)

	feed, err := watch.Open(t.Context(), store, ports.OrderQuery{}, identityView, discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	view := receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 1 })
	assert.Equal(t, order.Ordered, view[0].Status())
	assert.False(t, feed.Stale())

	id := view[0].ID()
	require.NoError(t, store.UpdateStatus(t.Context(), id, order.Cooking))

	view = receiveView(t, feed, func(v []*order.Order) bool {
		return len(v) == 1 && v[0].Status() == order.Cooking
	})
	assert.True(t, view[0].ID().IsEqual(id))
}

func TestFeed_AppliesTheView(t *testing.T) {
	store := memstore.NewStore()
	owner := kernel.NewUUID()
	submitOrder(t, store, owner)
	submitOrder(t, store, kernel.NewUUID())

	onlyOwner := func(orders []*order.Order) []*order.Order {
		view := make([]*order.Order, 0, len(orders))
		for _, o := range orders {
			if o.OwnerID().IsEqual(owner) {
				view = append(view, o)
			}
		}
		return view
	}

	feed, err := watch.Open(t.Context(), store, ports.OrderQuery{}, onlyOwner, discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	view := receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 1 })
	assert.True(t, view[0].OwnerID().IsEqual(owner))
}

// mutedStore hands out subscriptions that deliver the initial snapshot and
// then go silent, simulating a stream that misses changes.
type mutedStore struct {
	*memstore.Store
}

func (s *mutedStore) Subscribe(ctx context.Context, q ports.OrderQuery) (ports.OrderSubscription, error) {
	inner, err := s.Store.Subscribe(ctx, q)
	if err != nil {
		return nil, err
	}

	muted := &mutedSubscription{OrderSubscription: inner, snapshots: make(chan ports.Snapshot, 1)}
	muted.snapshots <- <-inner.Snapshots()
	return muted, nil
}

type mutedSubscription struct {
	ports.OrderSubscription
	snapshots chan ports.Snapshot
}

func (s *mutedSubscription) Snapshots() <-chan ports.Snapshot {
	return s.snapshots
}

func TestFeed_Refresh(t *testing.T) {
	store := &mutedStore{Store: memstore.NewStore()}

	feed, err := watch.Open(t.Context(), store, ports.OrderQuery{}, identityView, discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 0 })

	// The muted stream never reports this write; only the out-of-band
	// refresh can surface it.
	submitOrder(t, store.Store, kernel.NewUUID())
	feed.Refresh()

	receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 1 })
}

func TestFeed_CloseStopsDelivery(t *testing.T) {
	store := memstore.NewStore()

	feed, err := watch.Open(t.Context(), store, ports.OrderQuery{}, identityView, discardLogger())
	require.NoError(t, err)

	feed.Close()
	feed.Close() // idempotent

	for {
		if _, open := <-feed.Updates(); !open {
			break
		}
	}
}

func TestFeed_ContextCancellation(t *testing.T) {
	store := memstore.NewStore()
	ctx, cancel := context.WithCancel(t.Context())

	feed, err := watch.Open(ctx, store, ports.OrderQuery{}, identityView, discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, open := <-feed.Updates():
			if !open {
				return
			}
		case <-deadline:
			t.Fatal("feed did not stop after context cancellation")
		}
	}
}

// flakyStore wraps a working store but hands out a subscription whose error
// channel the test can feed.
type flakyStore struct {
	*memstore.Store

	mu       sync.Mutex
	breakage chan error
}

func (s *flakyStore) Subscribe(ctx context.Context, q ports.OrderQuery) (ports.OrderSubscription, error) {
	inner, err := s.Store.Subscribe(ctx, q)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.breakage == nil {
		return inner, nil
	}
	breakage := s.breakage
	s.breakage = nil
	return &flakySubscription{OrderSubscription: inner, breakage: breakage}, nil
}

type flakySubscription struct {
	ports.OrderSubscription
	breakage chan error
}

func (s *flakySubscription) Errors() <-chan error {
	return s.breakage
}

func TestFeed_SubscriptionLoss(t *testing.T) {
	breakage := make(chan error, 1)
	store := &flakyStore{Store: memstore.NewStore(), breakage: breakage}
	submitOrder(t, store.Store, kernel.NewUUID())

	feed, err := watch.Open(t.Context(), store, ports.OrderQuery{}, identityView, discardLogger())
	require.NoError(t, err)
	defer feed.Close()

	receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 1 })

	breakage <- errors.New("connection reset")

	select {
	case lossErr := <-feed.Errs():
		require.ErrorIs(t, lossErr, ports.ErrSubscriptionLost)
	case <-time.After(2 * time.Second):
		t.Fatal("feed did not report the loss")
	}
	assert.True(t, feed.Stale())

	// The resubscribe lands on the plain memstore subscription and delivers
	// a fresh snapshot, clearing the stale flag.
	receiveView(t, feed, func(v []*order.Order) bool { return len(v) == 1 })
	assert.False(t, feed.Stale())
}
