// Package watch keeps a role-scoped view of orders continuously in sync
// with the store. A Feed owns one store subscription, reconciles every
// incoming snapshot by full replacement, and publishes the derived view to
// its consumer. When the subscription breaks, the feed marks itself stale,
// reports the loss, and resubscribes with bounded backoff until the store
// answers again.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
)

// View derives the consumer-facing slice from a raw snapshot. It must be
// pure: the feed calls it from its own goroutine.
type View func([]*order.Order) []*order.Order

const (
	resubscribeBaseDelay = time.Second
	resubscribeMaxDelay  = 30 * time.Second
)

// Feed delivers reconciled views of the order collection. Updates carry the
// latest state only: if the consumer lags, intermediate views are dropped in
// favor of the newest one.
type Feed struct {
	store ports.OrderStore
	query ports.OrderQuery
	view  View
	log   *slog.Logger

	updates chan []*order.Order
	errs    chan error
	refresh chan struct{}

	stale atomic.Bool

	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
	done      chan struct{}
}

// Open subscribes to the store and starts the reconciliation loop. The feed
// runs until Close is called or ctx is cancelled.
func Open(
	ctx context.Context,
	store ports.OrderStore,
	query ports.OrderQuery,
	view View,
	log *slog.Logger,
) (*Feed, error) {
	sub, err := store.Subscribe(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}

	feedCtx, cancel := context.WithCancel(ctx)
	f := &Feed{
		store:   store,
		query:   query,
		view:    view,
		log:     log,
		updates: make(chan []*order.Order, 1),
		errs:    make(chan error, 1),
		refresh: make(chan struct{}, 1),
		ctx:     feedCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	go f.run(sub)
	return f, nil
}

// Updates returns the channel of reconciled views. It is closed when the
// feed stops.
func (f *Feed) Updates() <-chan []*order.Order {
	return f.updates
}

// Errs reports subscription losses. Each value wraps
// ports.ErrSubscriptionLost; the feed keeps running and recovers on its own.
func (f *Feed) Errs() <-chan error {
	return f.errs
}

// Stale reports whether the last known view may lag behind the store. It
// turns true when the subscription breaks and false once a fresh snapshot
// arrives.
func (f *Feed) Stale() bool {
	return f.stale.Load()
}

// Refresh asks the feed to re-read the store out of band. Used by the
// periodic resync job as a safety net against missed notifications. A
// refresh already in flight absorbs the request.
func (f *Feed) Refresh() {
	select {
	case f.refresh <- struct{}{}:
	default:
	}
}

// Close stops the loop and releases the subscription. Safe to call more
// than once.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.cancel()
		<-f.done
	})
}

func (f *Feed) run(sub ports.OrderSubscription) {
	defer close(f.done)
	defer close(f.updates)
	defer close(f.errs)
	defer func() {
		if sub != nil {
			sub.Close()
		}
	}()

	for {
		if sub == nil {
			var err error
			sub, err = f.resubscribe()
			if err != nil {
				return
			}
		}

		select {
		case <-f.ctx.Done():
			return

		case snapshot, ok := <-sub.Snapshots():
			if !ok {
				sub = f.drop(sub, fmt.Errorf("%w: snapshot channel closed", ports.ErrSubscriptionLost))
				continue
			}
			f.publish(snapshot)

		case err, ok := <-sub.Errors():
			if !ok {
				sub = f.drop(sub, fmt.Errorf("%w: error channel closed", ports.ErrSubscriptionLost))
				continue
			}
			sub = f.drop(sub, fmt.Errorf("%w: %w", ports.ErrSubscriptionLost, err))

		case <-f.refresh:
			orders, err := f.store.QueryOrders(f.ctx, f.query)
			if err != nil {
				f.log.Warn("feed refresh failed", "error", err)
				continue
			}
			f.publish(orders)
		}
	}
}

// publish replaces the consumer's view wholesale. Latest wins: a pending
// undelivered view is discarded before the new one is queued.
func (f *Feed) publish(snapshot []*order.Order) {
	f.stale.Store(false)

	select {
	case <-f.updates:
	default:
	}
	f.updates <- f.view(snapshot)
}

func (f *Feed) drop(sub ports.OrderSubscription, cause error) ports.OrderSubscription {
	sub.Close()
	f.stale.Store(true)
	f.log.Warn("order subscription lost", "error", cause)

	select {
	case f.errs <- cause:
	default:
	}
	return nil
}

// resubscribe retries Subscribe with exponential backoff until it succeeds
// or the feed is closed.
func (f *Feed) resubscribe() (ports.OrderSubscription, error) {
	delay := resubscribeBaseDelay
	for {
		select {
		case <-f.ctx.Done():
			return nil, f.ctx.Err()
		case <-time.After(delay):
		}

		sub, err := f.store.Subscribe(f.ctx, f.query)
		if err == nil {
			f.log.Info("order subscription restored")
			return sub, nil
		}

		f.log.Warn("resubscribe failed", "error", err, "retry_in", delay.String())
		delay *= 2
		if delay > resubscribeMaxDelay {
			delay = resubscribeMaxDelay
		}
	}
}
