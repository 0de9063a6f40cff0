package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server maps HTTP requests onto the application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler       *commands.SubmitOrderCommandHandler
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler
	setOrderPriorityHandler  *commands.SetOrderPriorityCommandHandler
	dequeueNextOrderHandler  *commands.DequeueNextOrderCommandHandler
	saveStateHandler         *commands.SaveStateCommandHandler
	loadStateHandler         *commands.LoadStateCommandHandler

	// Query handlers
	getAllOrdersHandler  queries.GetAllOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getOrderPriceHandler queries.GetOrderPriceQueryHandler
	getQueueHandler      queries.GetQueueQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	SubmitOrder       *commands.SubmitOrderCommandHandler
	UpdateOrderStatus *commands.UpdateOrderStatusCommandHandler
	SetOrderPriority  *commands.SetOrderPriorityCommandHandler
	DequeueNextOrder  *commands.DequeueNextOrderCommandHandler
	SaveState         *commands.SaveStateCommandHandler
	LoadState         *commands.LoadStateCommandHandler

	GetAllOrders  queries.GetAllOrdersQueryHandler
	GetOrder      queries.GetOrderQueryHandler
	GetOrderPrice queries.GetOrderPriceQueryHandler
	GetQueue      queries.GetQueueQueryHandler
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		submitOrderHandler:       h.SubmitOrder,
		updateOrderStatusHandler: h.UpdateOrderStatus,
		setOrderPriorityHandler:  h.SetOrderPriority,
		dequeueNextOrderHandler:  h.DequeueNextOrder,
		saveStateHandler:         h.SaveState,
		loadStateHandler:         h.LoadState,
		getAllOrdersHandler:      h.GetAllOrders,
		getOrderHandler:          h.GetOrder,
		getOrderPriceHandler:     h.GetOrderPrice,
		getQueueHandler:          h.GetQueue,
		logger:                   logger.With("component", "http"),
	}
}

// NewEcho builds an echo instance with request IDs, panic recovery, access
// logging and every route registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "Request handled",
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s.RegisterRoutes(e)
	return e
}

func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/price", s.GetOrderPrice)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.PUT("/orders/:id/priority", s.SetOrderPriority)
	api.GET("/queue", s.GetQueue)
	api.POST("/queue/next", s.DequeueNextOrder)
	api.POST("/state/save", s.SaveState)
	api.POST("/state/load", s.LoadState)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// SubmitOrder handles POST /api/v1/orders. Rejected submissions answer 422
// with the rejection reason.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(
		req.Username,
		req.Material,
		req.Dimensions,
		req.Quantity,
		req.SpecialInstructions,
	)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, err, "Failed to submit order")
	}
	if !result.Accepted() {
		return ctx.JSON(http.StatusUnprocessableEntity, Rejection{
			Code:   http.StatusUnprocessableEntity,
			Reason: result.Reason().String(),
			Detail: result.Detail(),
		})
	}

	return ctx.JSON(http.StatusCreated, toSubmittedOrder(result))
}

// GetOrders handles GET /api/v1/orders with an optional ?status= filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	status := order.Unknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return s.fail(ctx, http.StatusBadRequest, err.Error())
		}
		status = parsed
	}

	query, err := queries.NewGetAllOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrder(o))
}

// GetOrderPrice handles GET /api/v1/orders/:id/price.
func (s *Server) GetOrderPrice(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	query, err := queries.NewGetOrderPriceQuery(id)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	quote, err := s.getOrderPriceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.failWith(ctx, err, "Failed to price order")
	}

	price := toPrice(quote.Breakdown)
	price.OrderID = int64(quote.OrderID)
	return ctx.JSON(http.StatusOK, price)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	var req StatusChange
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, req.Status, req.Force)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, err, "Failed to update status")
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// SetOrderPriority handles PUT /api/v1/orders/:id/priority.
func (s *Server) SetOrderPriority(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	var req PriorityChange
	if err = ctx.Bind(&req); err != nil {
		return s.fail(ctx, http.StatusBadRequest, "Invalid request body")
	}

	priority, err := order.ParsePriority(req.Priority)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	cmd, err := commands.NewSetOrderPriorityCommand(id, priority)
	if err != nil {
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	}

	updated, err := s.setOrderPriorityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.failWith(ctx, err, "Failed to set priority")
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// GetQueue handles GET /api/v1/queue.
func (s *Server) GetQueue(ctx echo.Context) error {
	queued, err := s.getQueueHandler.Handle(ctx.Request().Context(), queries.NewGetQueueQuery())
	if err != nil {
		return s.failWith(ctx, err, "Failed to retrieve queue")
	}

	return ctx.JSON(http.StatusOK, toOrders(queued))
}

// DequeueNextOrder handles POST /api/v1/queue/next.
func (s *Server) DequeueNextOrder(ctx echo.Context) error {
	o, err := s.dequeueNextOrderHandler.Handle(ctx.Request().Context(), commands.NewDequeueNextOrderCommand())
	if err != nil {
		return s.failWith(ctx, err, "Failed to dequeue order")
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(o)))
}

// SaveState handles POST /api/v1/state/save.
func (s *Server) SaveState(ctx echo.Context) error {
	summary, err := s.saveStateHandler.Handle(ctx.Request().Context(), commands.NewSaveStateCommand())
	if err != nil {
		return s.failWith(ctx, err, "Failed to save state")
	}

	return ctx.JSON(http.StatusOK, SaveResult{
		SnapshotID: summary.SnapshotID,
		Orders:     summary.Orders,
		Queued:     summary.Queued,
	})
}

// LoadState handles POST /api/v1/state/load.
func (s *Server) LoadState(ctx echo.Context) error {
	summary, err := s.loadStateHandler.Handle(ctx.Request().Context(), commands.NewLoadStateCommand())
	if err != nil {
		return s.failWith(ctx, err, "Failed to load state")
	}

	return ctx.JSON(http.StatusOK, toLoadResult(summary))
}

func orderIDParam(ctx echo.Context) (order.ID, error) {
	id, err := order.ParseID(ctx.Param("id"))
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

func (s *Server) fail(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// failWith maps use case errors onto status codes. Unexpected errors are
// logged and answered with a generic message.
func (s *Server) failWith(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, commands.ErrQueueIsEmpty):
		return s.fail(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.fail(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled):
		return s.fail(ctx, http.StatusServiceUnavailable, message)
	}

	s.logger.ErrorContext(ctx.Request().Context(), message,
		"error", err,
		"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID))
	return s.fail(ctx, http.StatusInternalServerError, message)
}
