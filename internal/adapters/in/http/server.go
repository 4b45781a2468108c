// Package http exposes the coordinator over REST plus a websocket change
// feed. It translates between the wire schemas and the core's commands,
// queries and sessions; no business rule lives here.
package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"comanda/internal/core/application/usecases/commands"
	"comanda/internal/core/application/usecases/queries"
	"comanda/internal/core/application/watch"
	"comanda/internal/core/domain/model/kernel"
	"comanda/internal/core/domain/model/order"
	"comanda/internal/core/domain/model/session"
	"comanda/internal/core/ports"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler  commands.SubmitOrderCommandHandler
	advanceOrderHandler commands.AdvanceOrderCommandHandler

	// Query handlers
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler
	kitchenQueueHandler   queries.GetKitchenQueueQueryHandler
	cashierQueueHandler   queries.GetCashierQueueQueryHandler
	menuHandler           queries.GetMenuQueryHandler

	// Live feed collaborators
	store    ports.OrderStore
	registry *watch.Registry

	logger *slog.Logger
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	advanceOrderHandler commands.AdvanceOrderCommandHandler,
	customerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	kitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	cashierQueueHandler queries.GetCashierQueueQueryHandler,
	menuHandler queries.GetMenuQueryHandler,
	store ports.OrderStore,
	registry *watch.Registry,
	logger *slog.Logger,
) *Server {
	return &Server{
		submitOrderHandler:    submitOrderHandler,
		advanceOrderHandler:   advanceOrderHandler,
		customerOrdersHandler: customerOrdersHandler,
		kitchenQueueHandler:   kitchenQueueHandler,
		cashierQueueHandler:   cashierQueueHandler,
		menuHandler:           menuHandler,
		store:                 store,
		registry:              registry,
		logger:                logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all endpoints on e. Everything under /api/v1
// requires an identified caller.
func (s *Server) RegisterRoutes(e *echo.Echo, identity ports.IdentityProvider) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", SessionMiddleware(identity))
	api.POST("/orders", s.SubmitOrder)
	api.POST("/orders/:id/status", s.AdvanceOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/feed", s.OrdersFeed)
	api.GET("/menu", s.GetMenu)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// SubmitOrder handles POST /api/v1/orders - submits the caller's cart as a
// new order.
func (s *Server) SubmitOrder(c echo.Context) error {
	sess, ok := sessionFrom(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "no session")
	}

	var request NewOrderRequest
	if err := c.Bind(&request); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	items := make([]order.Item, 0, len(request.Items))
	for _, it := range request.Items {
		item, err := order.NewItem(it.Name, it.Price)
		if err != nil {
			return mapDomainError(c, err)
		}
		items = append(items, item)
	}

	cmd, err := commands.NewSubmitOrderCommand(sess.UserID(), items)
	if err != nil {
		return mapDomainError(c, err)
	}

	id, err := s.submitOrderHandler.Handle(c.Request().Context(), cmd, sess)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, NewOrderResponse{ID: id.String()})
}

// AdvanceOrder handles POST /api/v1/orders/:id/status - applies one status
// transition on behalf of the caller's role.
func (s *Server) AdvanceOrder(c echo.Context) error {
	sess, ok := sessionFrom(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "no session")
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, "order id is not a valid UUID")
	}

	var request AdvanceOrderRequest
	if err = c.Bind(&request); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid request body")
	}

	requested, err := order.StatusFromString(request.Status)
	if err != nil {
		return mapDomainError(c, err)
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, requested)
	if err != nil {
		return mapDomainError(c, err)
	}

	if err = s.advanceOrderHandler.Handle(c.Request().Context(), cmd, sess); err != nil {
		return mapDomainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - returns the caller's role-scoped
// view of the order collection.
func (s *Server) GetOrders(c echo.Context) error {
	sess, ok := sessionFrom(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, "no session")
	}

	ctx := c.Request().Context()

	var (
		orders []*order.Order
		err    error
	)
	switch sess.Role() {
	case session.RoleCustomer:
		query, queryErr := queries.NewGetCustomerOrdersQuery(sess.UserID())
		if queryErr != nil {
			return mapDomainError(c, queryErr)
		}
		orders, err = s.customerOrdersHandler.Handle(ctx, query)

	case session.RoleKitchen:
		orders, err = s.kitchenQueueHandler.Handle(ctx, queries.NewGetKitchenQueueQuery())

	case session.RoleCashier:
		orders, err = s.cashierQueueHandler.Handle(ctx, queries.NewGetCashierQueueQuery())

	default:
		return writeError(c, http.StatusForbidden, "no role assigned")
	}

	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, toOrderSchemas(orders))
}

// GetMenu handles GET /api/v1/menu - lists the product catalog.
func (s *Server) GetMenu(c echo.Context) error {
	products, err := s.menuHandler.Handle(c.Request().Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(http.StatusOK, toProductSchemas(products))
}
