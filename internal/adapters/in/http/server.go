// Package http exposes the order lifecycle over a REST surface. Requester
// identity arrives in the X-User-ID and X-User-Role headers; session
// issuance lives outside this service.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers carrying the requester identity.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       *commands.CreateOrderCommandHandler
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getRestaurantQueueHandler  queries.GetRestaurantQueueQueryHandler
	getTransactionsHandler     queries.GetTransactionsQueryHandler
	getTransactionHandler      queries.GetTransactionQueryHandler
	salesReportHandler         queries.SalesReportQueryHandler
	taxSummaryHandler          queries.TaxSummaryQueryHandler
	exportTransactionsHandler  queries.ExportTransactionsQueryHandler

	menuItems ports.MenuItemRepository
}

// NewServer creates an HTTP server wired to the given use case handlers.
func NewServer(
	createOrderHandler *commands.CreateOrderCommandHandler,
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantOrdersHandler queries.GetRestaurantOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getRestaurantQueueHandler queries.GetRestaurantQueueQueryHandler,
	getTransactionsHandler queries.GetTransactionsQueryHandler,
	getTransactionHandler queries.GetTransactionQueryHandler,
	salesReportHandler queries.SalesReportQueryHandler,
	taxSummaryHandler queries.TaxSummaryQueryHandler,
	exportTransactionsHandler queries.ExportTransactionsQueryHandler,
	menuItems ports.MenuItemRepository,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		getOrderHandler:            getOrderHandler,
		getRestaurantOrdersHandler: getRestaurantOrdersHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getRestaurantQueueHandler:  getRestaurantQueueHandler,
		getTransactionsHandler:     getTransactionsHandler,
		getTransactionHandler:      getTransactionHandler,
		salesReportHandler:         salesReportHandler,
		taxSummaryHandler:          taxSummaryHandler,
		exportTransactionsHandler:  exportTransactionsHandler,
		menuItems:                  menuItems,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/restaurants/:id/orders", s.GetRestaurantOrders)
	api.GET("/restaurants/:id/queue", s.GetRestaurantQueue)
	api.GET("/restaurants/:id/menu", s.GetRestaurantMenu)
	api.GET("/restaurants/:id/transactions", s.GetTransactions)
	api.GET("/restaurants/:id/transactions/export", s.ExportTransactions)
	api.GET("/restaurants/:id/reports/sales", s.GetSalesReport)
	api.GET("/restaurants/:id/reports/tax", s.GetTaxSummary)

	api.GET("/transactions/:id", s.GetTransaction)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "invalid restaurant_id")
	}

	orderType, err := order.TypeFromString(req.Type)
	if err != nil {
		return badRequest(ctx, "invalid order type")
	}

	lines := make([]services.RequestedLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, idErr := kernel.UUIDFromString(item.MenuItemID)
		if idErr != nil {
			return badRequest(ctx, "invalid menu_item_id")
		}
		lines = append(lines, services.RequestedLine{
			MenuItemID: menuItemID,
			Quantity:   item.Quantity,
		})
	}

	tip := kernel.ZeroMoney()
	if req.Tip != "" {
		tip, err = kernel.MoneyFromString(req.Tip)
		if err != nil {
			return badRequest(ctx, "invalid tip")
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actor.UserID,
		restaurantID,
		orderType,
		req.TableNumber,
		req.RequestedTime,
		lines,
		tip,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "invalid status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetRestaurantOrders handles GET /api/v1/restaurants/:id/orders.
func (s *Server) GetRestaurantOrders(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	filter, err := orderFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetRestaurantOrdersQuery(restaurantID, actor.UserID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getRestaurantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(result))
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}

	// Customers may only browse their own history.
	if !customerID.IsEqual(actor.UserID) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "orders of another customer are not visible",
		})
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(result))
}

// GetRestaurantQueue handles GET /api/v1/restaurants/:id/queue.
func (s *Server) GetRestaurantQueue(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantQueueQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getRestaurantQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	slots := make([]QueueSlotResponse, len(result))
	for i, slot := range result {
		slots[i] = QueueSlotResponse{
			OrderID:            slot.OrderID.String(),
			Position:           slot.Position,
			EstimatedReadyTime: slot.EstimatedReadyTime,
		}
	}

	return ctx.JSON(http.StatusOK, slots)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu. By default
// only available items are listed; ?all=true includes unavailable ones.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	availableOnly := ctx.QueryParam("all") != "true"

	items, err := s.menuItems.GetByRestaurant(ctx.Request().Context(), restaurantID, availableOnly)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemResponses(items))
}

// GetTransactions handles GET /api/v1/restaurants/:id/transactions.
func (s *Server) GetTransactions(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	filter, err := transactionFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetTransactionsQuery(restaurantID, actor.UserID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTransactionResponses(result))
}

// GetTransaction handles GET /api/v1/transactions/:id.
func (s *Server) GetTransaction(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	transactionID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid transaction id")
	}

	query, err := queries.NewGetTransactionQuery(transactionID, actor.UserID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getTransactionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTransactionResponse(resp))
}

// ExportTransactions handles GET /api/v1/restaurants/:id/transactions/export.
func (s *Server) ExportTransactions(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	filter, err := transactionFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewExportTransactionsQuery(restaurantID, actor.UserID, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	data, err := s.exportTransactionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return ctx.Blob(http.StatusOK, "text/csv", data)
}

// GetSalesReport handles GET /api/v1/restaurants/:id/reports/sales.
func (s *Server) GetSalesReport(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	period, err := queries.ReportPeriodFromString(ctx.QueryParam("period"))
	if err != nil {
		return badRequest(ctx, "invalid period")
	}

	filter, err := transactionFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewSalesReportQuery(restaurantID, actor.UserID, period, filter)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.salesReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	buckets := make([]SalesReportBucketResponse, len(report))
	for i, bucket := range report {
		buckets[i] = SalesReportBucketResponse{
			PeriodStart: bucket.PeriodStart,
			Sales:       bucket.Sales.String(),
			TaxA:        bucket.TaxA.String(),
			TaxB:        bucket.TaxB.String(),
			Tips:        bucket.Tips.String(),
			Orders:      bucket.Orders,
		}
	}

	return ctx.JSON(http.StatusOK, buckets)
}

// GetTaxSummary handles GET /api/v1/restaurants/:id/reports/tax.
func (s *Server) GetTaxSummary(ctx echo.Context) error {
	actor, err := requesterFromHeaders(ctx)
	if err != nil {
		return err
	}

	restaurantID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	fiscalYear, err := strconv.Atoi(ctx.QueryParam("fiscal_year"))
	if err != nil {
		return badRequest(ctx, "invalid fiscal_year")
	}

	query, err := queries.NewTaxSummaryQuery(restaurantID, actor.UserID, fiscalYear)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.taxSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TaxSummaryResponse{
		FiscalYear:   summary.FiscalYear,
		Sales:        summary.Sales.String(),
		TaxA:         summary.TaxA.String(),
		TaxB:         summary.TaxB.String(),
		Tips:         summary.Tips.String(),
		Transactions: summary.Transactions,
	})
}

// requesterFromHeaders builds the acting user from the identity headers.
// A missing or malformed identity yields a 401 reply and a non-nil error, so
// callers returning the error stop before touching parse or query logic.
func requesterFromHeaders(ctx echo.Context) (commands.Actor, error) {
	userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
	if err != nil {
		return commands.Actor{}, replyUnauthorized(ctx, HeaderUserID)
	}

	role, err := commands.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return commands.Actor{}, replyUnauthorized(ctx, HeaderUserRole)
	}

	return commands.Actor{UserID: userID, Role: role}, nil
}

// replyUnauthorized writes the 401 body and always reports a non-nil error.
// ctx.JSON returns nil on a successful write; echo skips the error handler's
// second write because the response is already committed.
func replyUnauthorized(ctx echo.Context, header string) error {
	if err := ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "missing or invalid " + header + " header",
	}); err != nil {
		return err
	}
	return echo.ErrUnauthorized
}

func orderFilterFromQuery(ctx echo.Context) (queries.OrderFilter, error) {
	var filter queries.OrderFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("invalid status filter")
		}
		filter.Status = &status
	}
	if raw := ctx.QueryParam("type"); raw != "" {
		orderType, err := order.TypeFromString(raw)
		if err != nil {
			return queries.OrderFilter{}, errors.New("invalid type filter")
		}
		filter.Type = &orderType
	}

	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return queries.OrderFilter{}, err
	}
	filter.From = from
	filter.To = to

	return filter, nil
}

func transactionFilterFromQuery(ctx echo.Context) (queries.TransactionFilter, error) {
	var filter queries.TransactionFilter

	if raw := ctx.QueryParam("fiscal_year"); raw != "" {
		fiscalYear, err := strconv.Atoi(raw)
		if err != nil {
			return queries.TransactionFilter{}, errors.New("invalid fiscal_year filter")
		}
		filter.FiscalYear = &fiscalYear
	}

	from, to, err := dateRangeFromQuery(ctx)
	if err != nil {
		return queries.TransactionFilter{}, err
	}
	filter.From = from
	filter.To = to

	return filter, nil
}

func dateRangeFromQuery(ctx echo.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time

	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, errors.New("invalid from filter, want RFC 3339")
		}
		from = &parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, errors.New("invalid to filter, want RFC 3339")
		}
		to = &parsed
	}

	return from, to, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps use case errors onto HTTP statuses: absent aggregates to
// 404, authorization failures to 403, rejected transitions to 409 and
// validation failures to 400. Everything else is a 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, kernel.ErrUUIDIsNotConstructed),
		errors.Is(err, order.ErrOrderHasNoItems),
		errors.Is(err, services.ErrItemUnavailable),
		errors.Is(err, services.ErrItemWrongRestaurant):
		status = http.StatusBadRequest
	}

	message := "internal server error"
	if status != http.StatusInternalServerError {
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
