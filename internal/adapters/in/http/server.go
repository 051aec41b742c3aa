// Package http exposes the bakery order backend over HTTP with echo.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/generated/servers"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

type (
	// PlaceOrderHandler accepts new orders.
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}

	// GetProductsHandler lists the catalog.
	GetProductsHandler interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) ([]queries.GetProductsQueryResponse, error)
	}

	// GetOrderHandler reads one order.
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (order.Record, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface for the order backend. It
// coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler PlaceOrderHandler

	// Query handlers
	getProductsHandler GetProductsHandler
	getOrderHandler    GetOrderHandler

	orderMetrics *metrics.OrderMetrics
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers. orderMetrics may be nil.
func NewServer(
	placeOrderHandler PlaceOrderHandler,
	getProductsHandler GetProductsHandler,
	getOrderHandler GetOrderHandler,
	orderMetrics *metrics.OrderMetrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:  placeOrderHandler,
		getProductsHandler: getProductsHandler,
		getOrderHandler:    getOrderHandler,
		orderMetrics:       orderMetrics,
		logger:             logger.With("component", "http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "healthy"})
}

// GetProducts handles GET /api/products - lists the catalog ordered by name.
func (s *Server) GetProducts(ctx echo.Context) error {
	products, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "Failed to retrieve products", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "Failed to retrieve products"})
	}

	return ctx.JSON(http.StatusOK, toProducts(products))
}

// PlaceOrder handles POST /api/orders - accepts a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Invalid request body"})
	}

	lines := make([]services.RequestedLine, 0, len(body.Items))
	for _, item := range body.Items {
		productID, err := kernel.UUIDFromString(item.ProductId)
		if err != nil {
			if item.ProductId == "" {
				return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Missing required fields"})
			}
			return ctx.JSON(http.StatusNotFound, productNotFound(item.ProductId))
		}
		lines = append(lines, services.RequestedLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), body.CustomerName, body.CustomerEmail, lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{Error: "Missing required fields"})
	}

	placed, err := s.placeOrderHandler.Handle(reqCtx, cmd)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return ctx.JSON(http.StatusNotFound, productNotFound(notFound.ID))
		}
		s.logger.ErrorContext(reqCtx, "Failed to place order", "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "Failed to place order"})
	}

	if s.orderMetrics != nil {
		s.orderMetrics.Placed.Inc()
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		OrderId: placed.ID().String(),
		Status:  placed.Status().String(),
	})
}

// GetOrder handles GET /api/orders/{order_id} - reads an order and its lines.
func (s *Server) GetOrder(ctx echo.Context, id string) error {
	reqCtx := ctx.Request().Context()

	orderID, err := kernel.UUIDFromString(id)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: "Order not found"})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusNotFound, servers.Error{Error: "Order not found"})
	}

	record, err := s.getOrderHandler.Handle(reqCtx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{Error: "Order not found"})
		}
		s.logger.ErrorContext(reqCtx, "Failed to retrieve order", "order_id", orderID.String(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{Error: "Failed to retrieve order"})
	}

	return ctx.JSON(http.StatusOK, toOrder(record))
}

func productNotFound(id any) servers.Error {
	return servers.Error{Error: fmt.Sprintf("Product with ID %v not found", id)}
}
