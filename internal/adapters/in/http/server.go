// Package http exposes the order review workflow over a JSON API. Each
// endpoint builds a command or query, delegates to the application layer,
// and translates the error taxonomy to HTTP status codes.
package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	openOrderHandler           commands.OpenOrderCommandHandler
	validateOrderHandler       commands.ValidateOrderCommandHandler
	exportOrderHandler         commands.ExportOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	restoreOrderHandler        commands.RestoreOrderCommandHandler
	confirmErpProcessedHandler commands.ConfirmErpProcessedCommandHandler
	setLineStatusHandler       commands.SetLineStatusCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getStatusHistoryHandler  queries.GetStatusHistoryQueryHandler
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler

	reasonPolicy commands.ReasonPolicy
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	openOrderHandler commands.OpenOrderCommandHandler,
	validateOrderHandler commands.ValidateOrderCommandHandler,
	exportOrderHandler commands.ExportOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	restoreOrderHandler commands.RestoreOrderCommandHandler,
	confirmErpProcessedHandler commands.ConfirmErpProcessedCommandHandler,
	setLineStatusHandler commands.SetLineStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getOrdersByStatusHandler queries.GetOrdersByStatusQueryHandler,
) *Server {
	return &Server{
		openOrderHandler:           openOrderHandler,
		validateOrderHandler:       validateOrderHandler,
		exportOrderHandler:         exportOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		restoreOrderHandler:        restoreOrderHandler,
		confirmErpProcessedHandler: confirmErpProcessedHandler,
		setLineStatusHandler:       setLineStatusHandler,
		getOrderHandler:            getOrderHandler,
		getStatusHistoryHandler:    getStatusHistoryHandler,
		getOrdersByStatusHandler:   getOrdersByStatusHandler,
		reasonPolicy:               commands.DefaultReasonPolicy(),
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrdersByStatus)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/history", s.GetStatusHistory)

	api.POST("/orders/:id/open", s.OpenOrder)
	api.POST("/orders/:id/validate", s.ValidateOrder)
	api.POST("/orders/:id/export", s.ExportOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/restore", s.RestoreOrder)
	api.POST("/orders/:id/erp-confirm", s.ConfirmErpProcessed)
	api.POST("/orders/:id/lines/:lineNumber/status", s.SetLineStatus)
}

// ActorRequest carries the reviewer identity for simple transitions.
type ActorRequest struct {
	Actor string `json:"actor"`
}

// ReasonRequest carries the reviewer identity, the free-text reason, and
// the explicit confirmation flag for cancel and restore.
type ReasonRequest struct {
	Actor     string `json:"actor"`
	Reason    string `json:"reason"`
	Confirmed bool   `json:"confirmed"`
}

// LineStatusRequest carries the target status for one order line.
type LineStatusRequest struct {
	Actor  string `json:"actor"`
	Status string `json:"status"`
}

// ExportResponse carries the generated export document and the filename it
// should be saved under.
type ExportResponse struct {
	Filename string `json:"filename"`
	Document string `json:"document"`
}

// OpenOrder handles POST /api/v1/orders/:id/open - a reviewer opens the
// order, which assigns the sequence number on first open.
func (s *Server) OpenOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewOpenOrderCommand(orderID, req.Actor)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.openOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ValidateOrder handles POST /api/v1/orders/:id/validate - marks the order
// ready for export after all checks pass.
func (s *Server) ValidateOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewValidateOrderCommand(orderID, req.Actor)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.validateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ExportOrder handles POST /api/v1/orders/:id/export - generates the XML
// document and returns it with its filename.
func (s *Server) ExportOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewExportOrderCommand(orderID, req.Actor)
	if err != nil {
		return problem(ctx, err)
	}

	result, err := s.exportOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ExportResponse{
		Filename: result.Filename,
		Document: result.Document,
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Actor, req.Reason, req.Confirmed, s.reasonPolicy)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RestoreOrder handles POST /api/v1/orders/:id/restore - brings a
// cancelled order back under review. The same reason and confirmation
// rules apply as for cancellation.
func (s *Server) RestoreOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ReasonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRestoreOrderCommand(orderID, req.Actor, req.Reason, req.Confirmed, s.reasonPolicy)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.restoreOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmErpProcessed handles POST /api/v1/orders/:id/erp-confirm -
// records the ERP acknowledgment for an exported order.
func (s *Server) ConfirmErpProcessed(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req ActorRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewConfirmErpProcessedCommand(orderID, req.Actor)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.confirmErpProcessedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetLineStatus handles POST /api/v1/orders/:id/lines/:lineNumber/status.
func (s *Server) SetLineStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	lineNumber, err := intParam(ctx, "lineNumber")
	if err != nil {
		return badRequest(ctx, "invalid line number")
	}

	var req LineStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.ParseLineStatus(req.Status)
	if err != nil {
		return problem(ctx, err)
	}

	cmd, err := commands.NewSetLineStatusCommand(orderID, lineNumber, status, req.Actor)
	if err != nil {
		return problem(ctx, err)
	}

	if err := s.setLineStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return problem(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return problem(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetStatusHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return problem(ctx, err)
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			StatusCode: entry.StatusCode,
			Actor:      entry.Actor,
			Note:       entry.Note,
			RecordedAt: entry.RecordedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrdersByStatus handles GET /api/v1/orders?status=02 - the review
// worklist for one lifecycle status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromCode(ctx.QueryParam("status"))
	if err != nil {
		return badRequest(ctx, "invalid or missing status code")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return problem(ctx, err)
	}

	orders, err := s.getOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	response := make([]WorklistRowResponse, len(orders))
	for i, row := range orders {
		response[i] = WorklistRowResponse{
			ID:                  row.ID.String(),
			CustomerOrderNumber: row.CustomerOrderNumber,
			CustomerID:          row.CustomerID,
			SequenceNumber:      row.SequenceNumber,
			UpdatedAt:           row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}
