// Package http provides the inbound HTTP adapter. It translates echo
// requests into commands and queries and maps domain errors onto HTTP
// status codes.
package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler  commands.PlaceOrderCommandHandler
	updateOrderHandler commands.UpdateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler
	shipOrderHandler   commands.ShipOrderCommandHandler

	// Query handlers
	getOrderHandler           queries.GetOrderByIDQueryHandler
	getInvoiceHandler         queries.GetInvoiceByIDQueryHandler
	getInvoiceByOrderHandler  queries.GetInvoiceByOrderIDQueryHandler
	getShipmentHandler        queries.GetShipmentByIDQueryHandler
	getShipmentByOrderHandler queries.GetShipmentByOrderIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	getOrderHandler queries.GetOrderByIDQueryHandler,
	getInvoiceHandler queries.GetInvoiceByIDQueryHandler,
	getInvoiceByOrderHandler queries.GetInvoiceByOrderIDQueryHandler,
	getShipmentHandler queries.GetShipmentByIDQueryHandler,
	getShipmentByOrderHandler queries.GetShipmentByOrderIDQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:         placeOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		cancelOrderHandler:        cancelOrderHandler,
		shipOrderHandler:          shipOrderHandler,
		getOrderHandler:           getOrderHandler,
		getInvoiceHandler:         getInvoiceHandler,
		getInvoiceByOrderHandler:  getInvoiceByOrderHandler,
		getShipmentHandler:        getShipmentHandler,
		getShipmentByOrderHandler: getShipmentByOrderHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.PlaceOrder)
	e.PUT("/orders/:orderId", s.UpdateOrder)
	e.POST("/orders/:orderId/cancel", s.CancelOrder)
	e.POST("/orders/:orderId/ship", s.ShipOrder)
	e.GET("/orders/:orderId", s.GetOrder)
	e.GET("/orders/:orderId/invoice", s.GetOrderInvoice)
	e.GET("/orders/:orderId/shipment", s.GetOrderShipment)

	e.GET("/invoices/:invoiceId", s.GetInvoice)
	e.GET("/shipments/:shipmentId", s.GetShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// PlaceOrder handles POST /orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(req.CustomerEmail, toDomainLines(req.Lines))
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{
		OrderID: resp.OrderID.String(),
		Status:  "placed",
		Total:   resp.Total,
	})
}

// UpdateOrder handles PUT /orders/:orderId - replaces the order lines.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, toDomainLines(req.Lines))
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateOrderResponse{
		OrderID:  resp.OrderID.String(),
		OldTotal: resp.OldTotal,
		NewTotal: resp.NewTotal,
	})
}

// CancelOrder handles POST /orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	// Body is optional; a missing or empty body means no reason given.
	var req CancelOrderRequest
	_ = ctx.Bind(&req)

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CancelOrderResponse{
		OrderID: resp.OrderID.String(),
		Status:  resp.Status.String(),
	})
}

// ShipOrder handles POST /orders/:orderId/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	// Body is optional; tracking details may be attached later by the carrier.
	var req ShipOrderRequest
	_ = ctx.Bind(&req)

	cmd, err := commands.NewShipOrderCommand(orderID, req.TrackingNumber, req.Carrier)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipOrderResponse{
		OrderID:    resp.OrderID.String(),
		ShipmentID: resp.ShipmentID.String(),
		Status:     resp.Status.String(),
		ShippedAt:  resp.ShippedAt,
	})
}

// GetOrder handles GET /orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:            resp.ID.String(),
		CustomerEmail: resp.CustomerEmail,
		Status:        resp.Status,
		Total:         resp.Total,
		CreatedAt:     resp.CreatedAt,
		Lines:         toLineResponses(resp.Lines),
	})
}

// GetOrderInvoice handles GET /orders/:orderId/invoice.
func (s *Server) GetOrderInvoice(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetInvoiceByOrderIDQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getInvoiceByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceResponse(resp))
}

// GetInvoice handles GET /invoices/:invoiceId.
func (s *Server) GetInvoice(ctx echo.Context) error {
	invoiceID, err := pathUUID(ctx, "invoiceId")
	if err != nil {
		return badRequest(ctx, "Invalid invoice ID")
	}

	query, err := queries.NewGetInvoiceByIDQuery(invoiceID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInvoiceResponse(resp))
}

// GetOrderShipment handles GET /orders/:orderId/shipment.
func (s *Server) GetOrderShipment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetShipmentByOrderIDQuery(orderID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getShipmentByOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(resp))
}

// GetShipment handles GET /shipments/:shipmentId.
func (s *Server) GetShipment(ctx echo.Context) error {
	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return badRequest(ctx, "Invalid shipment ID")
	}

	query, err := queries.NewGetShipmentByIDQuery(shipmentID)
	if err != nil {
		return mapError(ctx, err)
	}

	resp, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShipmentResponse(resp))
}

func pathUUID(ctx echo.Context, param string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(param))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapError translates domain errors onto HTTP status codes: validation
// failures are 400, missing objects 404, illegal transitions 409, and
// everything else a 500 with a generic message.
func mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
