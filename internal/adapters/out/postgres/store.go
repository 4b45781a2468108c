package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/ports"
	"comanda/internal/pkg/errs"
)

const (
	ordersChannel = "orders_changed"

	listenerMinReconnect = time.Second
	listenerMaxReconnect = time.Minute
	listenerPingInterval = 90 * time.Second

	subscriptionBuffer = 16
)

// GormOrderStore implements ports.OrderStore on PostgreSQL. Every write
// pairs the row change with a pg_notify in the same transaction, so the
// notification exists exactly when the change is visible to readers.
type GormOrderStore struct {
	db  *gorm.DB
	dsn string
	log *slog.Logger
}

// NewGormOrderStore creates a store. The dsn is used to open dedicated
// LISTEN connections for subscriptions; reads and writes go through db.
func NewGormOrderStore(db *gorm.DB, dsn string, log *slog.Logger) *GormOrderStore {
	return &GormOrderStore{db: db, dsn: dsn, log: log}
}

// CreateOrder persists a new order, assigning its id and creation time.
func (s *GormOrderStore) CreateOrder(ctx context.Context, o *order.Order) (kernel.UUID, error) {
	if err := o.Validate(); err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	id := kernel.NewUUID()
	stored, err := order.RestoreOrder(id, o.OwnerID(), o.Items(), o.Status(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	dto, err := orderFromDomain(stored)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if txErr := tx.Create(&dto).Error; txErr != nil {
			return txErr
		}
		return notifyOrdersChanged(tx, id)
	})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	return id, nil
}

// UpdateStatus sets the status of an existing order.
func (s *GormOrderStore) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}
	if err := status.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", id.Bytes()).
			Update("status", status.String())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return notifyOrdersChanged(tx, id)
	})

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrStoreWrite, err)
	}
	return nil
}

// GetOrder fetches a single order by id.
func (s *GormOrderStore) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return orderToDomain(dto)
}

// QueryOrders runs the predicate once, pushing filters, ordering and limit
// into SQL.
func (s *GormOrderStore) QueryOrders(ctx context.Context, q ports.OrderQuery) ([]*order.Order, error) {
	tx := s.db.WithContext(ctx).Model(&OrderDTO{})

	if q.Owner != nil {
		tx = tx.Where("owner_id = ?", q.Owner.Bytes())
	}
	if len(q.Statuses) > 0 {
		names := make([]string, 0, len(q.Statuses))
		for _, st := range q.Statuses {
			names = append(names, st.String())
		}
		tx = tx.Where("status IN ?", names)
	}

	direction := "ASC"
	if q.NewestFirst {
		direction = "DESC"
	}
	tx = tx.Order("created_at " + direction).Order("id " + direction)

	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var dtos []OrderDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Subscribe opens a dedicated LISTEN connection and re-runs the predicate
// after every notification. Notifications carry only the changed order's
// id; the fresh query is the source of truth, so a missed payload costs
// nothing.
func (s *GormOrderStore) Subscribe(ctx context.Context, q ports.OrderQuery) (ports.OrderSubscription, error) {
	listener := pq.NewListener(s.dsn, listenerMinReconnect, listenerMaxReconnect,
		func(_ pq.ListenerEventType, err error) {
			if err != nil {
				s.log.Warn("orders listener event", "error", err)
			}
		})
	if err := listener.Listen(ordersChannel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen %s: %w", ordersChannel, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &pgSubscription{
		store:     s,
		query:     q,
		listener:  listener,
		snapshots: make(chan ports.Snapshot, subscriptionBuffer),
		errors:    make(chan error, 1),
		ctx:       subCtx,
		cancel:    cancel,
	}

	go sub.run()
	return sub, nil
}

// notifyOrdersChanged emits the change signal inside the caller's
// transaction.
func notifyOrdersChanged(tx *gorm.DB, id kernel.UUID) error {
	return tx.Exec("SELECT pg_notify(?, ?)", ordersChannel, id.String()).Error
}

type pgSubscription struct {
	store     *GormOrderStore
	query     ports.OrderQuery
	listener  *pq.Listener
	snapshots chan ports.Snapshot
	errors    chan error
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func (sub *pgSubscription) Snapshots() <-chan ports.Snapshot {
	return sub.snapshots
}

func (sub *pgSubscription) Errors() <-chan error {
	return sub.errors
}

func (sub *pgSubscription) Close() {
	sub.closeOnce.Do(func() {
		sub.cancel()
	})
}

func (sub *pgSubscription) run() {
	defer close(sub.snapshots)
	defer close(sub.errors)
	defer func() { _ = sub.listener.Close() }()

	if !sub.deliver() {
		return
	}

	ping := time.NewTicker(listenerPingInterval)
	defer ping.Stop()

	for {
		select {
		case <-sub.ctx.Done():
			return

		case note := <-sub.listener.Notify:
			// A nil notification means the underlying connection was
			// re-established; changes may have been missed in between, so
			// re-query either way.
			if note == nil {
				sub.reportLost(errors.New("listener connection was reset"))
			}
			if !sub.deliver() {
				return
			}

		case <-ping.C:
			if err := sub.listener.Ping(); err != nil {
				sub.reportLost(fmt.Errorf("listener ping: %w", err))
			}
		}
	}
}

// deliver queries the current matching set and pushes it. Returns false
// when the subscription should stop.
func (sub *pgSubscription) deliver() bool {
	orders, err := sub.store.QueryOrders(sub.ctx, sub.query)
	if err != nil {
		if sub.ctx.Err() != nil {
			return false
		}
		sub.reportLost(fmt.Errorf("re-query after change: %w", err))
		return true
	}

	select {
	case sub.snapshots <- ports.Snapshot(orders):
		return true
	case <-sub.ctx.Done():
		return false
	}
}

func (sub *pgSubscription) reportLost(cause error) {
	select {
	case sub.errors <- fmt.Errorf("%w: %w", ports.ErrSubscriptionLost, cause):
	default:
	}
}
