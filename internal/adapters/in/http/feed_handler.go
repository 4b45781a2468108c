package http

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/application/watch"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/domain/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Browser clients are authenticated by the identity header, not by
	// origin. Cross-origin policy is the gateway's concern.
	CheckOrigin: func(*http.Request) bool { return true },
}

// FeedFrame is one websocket message of the live feed. Type is "snapshot"
// when Orders replaces the client's whole view, or "sync" when only the
// stale flag changed.
type FeedFrame struct {
	Type   string        `json:"type"`
	Orders []OrderSchema `json:"orders,omitempty"`
	Stale  bool          `json:"stale"`
}

// OrdersFeed handles GET /api/v1/orders/feed - streams the caller's
// role-scoped view over a websocket. Each frame replaces the previous view
// wholesale; the client never patches.
func (s *Server) OrdersFeed(c echo.Context) error {
	sess, ok := sessionFrom(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "no session")
	}
	if sess.Is(session.RoleUnknown) {
		return writeError(c, http.StatusForbidden, "no role assigned")
	}

	feed, err := watch.Open(
		c.Request().Context(),
		s.store,
		queries.ScopeFor(sess),
		func(orders []*order.Order) []*order.Order {
			return services.ViewFor(sess, orders)
		},
		s.logger,
	)
	if err != nil {
		return mapDomainError(c, err)
	}
	s.registry.Register(feed)
	defer func() {
		s.registry.Deregister(feed)
		feed.Close()
	}()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	// The read pump exists only to observe the close handshake; clients
	// send nothing meaningful.
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, readErr := conn.ReadMessage(); readErr != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-clientGone:
			return nil

		case <-c.Request().Context().Done():
			return nil

		case orders, open := <-feed.Updates():
			if !open {
				return nil
			}
			frame := FeedFrame{Type: "snapshot", Orders: toOrderSchemas(orders), Stale: false}
			if writeErr := conn.WriteJSON(frame); writeErr != nil {
				return nil
			}

		case feedErr, open := <-feed.Errs():
			if !open {
				// The feed closes both channels together when it stops.
				return nil
			}
			s.logger.Warn("order feed degraded", "error", feedErr)
			if writeErr := conn.WriteJSON(FeedFrame{Type: "sync", Stale: true}); writeErr != nil {
				return nil
			}
		}
	}
}
