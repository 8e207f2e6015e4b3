// Package http exposes the shipping label workflow over a JSON HTTP API.
// Requests are validated against the embedded OpenAPI document before they
// reach a handler.
package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"shippinglabel/internal/core/application/usecases/commands"
	"shippinglabel/internal/core/application/usecases/queries"
	"shippinglabel/internal/core/domain/model/action"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/domain/model/labelstate"
	"shippinglabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	// Command handlers
	initOrderLabelsHandler commands.InitOrderLabelsCommandHandler
	dispatchActionHandler  commands.DispatchActionCommandHandler

	// Query handlers
	getOrderLabelStateHandler queries.GetOrderLabelStateQueryHandler
	getOrderLabelsHandler     OrderLabelsReader

	logger *slog.Logger
}

// OrderLabelsReader reads the stored label history of an order.
type OrderLabelsReader interface {
	Handle(ctx context.Context, query queries.GetOrderLabelsQuery) ([]queries.GetOrderLabelsQueryResponse, error)
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	initOrderLabelsHandler commands.InitOrderLabelsCommandHandler,
	dispatchActionHandler commands.DispatchActionCommandHandler,
	getOrderLabelStateHandler queries.GetOrderLabelStateQueryHandler,
	getOrderLabelsHandler OrderLabelsReader,
	logger *slog.Logger,
) *Server {
	return &Server{
		initOrderLabelsHandler:    initOrderLabelsHandler,
		dispatchActionHandler:     dispatchActionHandler,
		getOrderLabelStateHandler: getOrderLabelStateHandler,
		getOrderLabelsHandler:     getOrderLabelsHandler,
		logger:                    logger.With("component", "http"),
	}
}

// Register mounts the API, its request validation and the swagger UI on e.
func Register(e *echo.Echo, s *Server, validator echo.MiddlewareFunc) {
	e.GET("/health", s.GetHealth)
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(DocInstanceName)))

	api := e.Group("/api/v1", validator)
	api.POST("/orders/:orderId/labels/init", s.InitOrderLabels)
	api.POST("/orders/:orderId/actions", s.DispatchAction)
	api.GET("/orders/:orderId/state", s.GetOrderLabelState)
	api.GET("/orders/:orderId/labels", s.GetOrderLabels)
}

// GetHealth handles GET /health.
//
//	@Summary	Liveness probe
//	@Success	200
//	@Router		/health [get]
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// InitOrderLabels handles POST /api/v1/orders/{orderId}/labels/init.
//
//	@Summary	Build the initial label state of an order
//	@Param		orderId	path		string					true	"Order ID"	Format(uuid)
//	@Param		params	body		labelstate.InitParams	true	"Form data"
//	@Success	200		{object}	labelstate.State
//	@Failure	400		{object}	Error
//	@Router		/api/v1/orders/{orderId}/labels/init [post]
func (s *Server) InitOrderLabels(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var params labelstate.InitParams
	if err = ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid request body"))
	}

	cmd, err := commands.NewInitOrderLabelsCommand(orderID, params)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.initOrderLabelsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondState(ctx, orderID)
}

// DispatchAction handles POST /api/v1/orders/{orderId}/actions.
//
//	@Summary	Apply one action to the label state of an order
//	@Param		orderId	path		string	true	"Order ID"	Format(uuid)
//	@Success	200		{object}	labelstate.State
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/api/v1/orders/{orderId}/actions [post]
func (s *Server) DispatchAction(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, newError(http.StatusBadRequest, "Invalid request body"))
	}

	a, err := action.Decode(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDispatchActionCommand(orderID, a)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.dispatchActionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondState(ctx, orderID)
}

// GetOrderLabelState handles GET /api/v1/orders/{orderId}/state.
//
//	@Summary	Read the live label state of an order
//	@Param		orderId	path		string	true	"Order ID"	Format(uuid)
//	@Success	200		{object}	labelstate.State
//	@Failure	404		{object}	Error
//	@Router		/api/v1/orders/{orderId}/state [get]
func (s *Server) GetOrderLabelState(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	return s.respondState(ctx, orderID)
}

// GetOrderLabels handles GET /api/v1/orders/{orderId}/labels.
//
//	@Summary	Read the stored label history of an order
//	@Param		orderId	path	string	true	"Order ID"	Format(uuid)
//	@Success	200		{array}	StoredLabel
//	@Router		/api/v1/orders/{orderId}/labels [get]
func (s *Server) GetOrderLabels(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderLabelsQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	labels, err := s.getOrderLabelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]StoredLabel, len(labels))
	for i, l := range labels {
		response[i] = StoredLabel{
			LabelID:          l.LabelID,
			CarrierID:        l.CarrierID,
			ServiceName:      l.ServiceName,
			Tracking:         l.Tracking,
			Status:           l.Status,
			Rate:             l.Rate,
			Currency:         l.Currency,
			CreatedDate:      l.CreatedDate,
			RefundableAmount: l.RefundableAmount,
			ProductNames:     l.ProductNames,
			RefundStatus:     l.RefundStatus,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// StoredLabel is one entry of an order's label history.
type StoredLabel struct {
	LabelID          string   `json:"labelId"`
	CarrierID        string   `json:"carrierId"`
	ServiceName      string   `json:"serviceName"`
	Tracking         string   `json:"tracking"`
	Status           string   `json:"status"`
	Rate             float64  `json:"rate"`
	Currency         string   `json:"currency"`
	CreatedDate      int64    `json:"createdDate"`
	RefundableAmount float64  `json:"refundableAmount"`
	ProductNames     []string `json:"productNames"`
	RefundStatus     string   `json:"refundStatus,omitempty"`
}

func (s *Server) respondState(ctx echo.Context, orderID kernel.OrderID) error {
	query, err := queries.NewGetOrderLabelStateQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	state, err := s.getOrderLabelStateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, state)
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(code, newError(code, "Internal error"))
	}
	return ctx.JSON(code, newError(code, err.Error()))
}

// bindOrderID reads the orderId path parameter.
func bindOrderID(ctx echo.Context) (kernel.OrderID, error) {
	var raw string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	return kernel.OrderIDFromString(raw)
}
