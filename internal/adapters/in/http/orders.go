package http

import (
	"errors"
	"net/http"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/domain/model/kernel"
	"fleetledger/internal/core/domain/model/order"
	"fleetledger/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the body of POST /api/v1/orders.
// The id is optional; one is generated when omitted.
type CreateOrderRequest struct {
	ID         string `json:"id" validate:"omitempty,uuid"`
	OrderType  string `json:"order_type" validate:"required"`
	MerchantID string `json:"merchant_id" validate:"required,uuid"`
}

// CreateOrderResponse returns the identifier of the created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AssignDriverRequest is the body of POST /api/v1/orders/:orderID/assign.
// Assigning the driver of an in-transit order transfers it to a new driver.
type AssignDriverRequest struct {
	DriverID    string          `json:"driver_id" validate:"required,uuid"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/:orderID/status.
type ChangeOrderStatusRequest struct {
	Target string `json:"target" validate:"required"`
}

// OrderFilterRequest narrows the target set of a bulk operation.
// An empty filter matches every order.
type OrderFilterRequest struct {
	Statuses   []string `json:"statuses" validate:"omitempty,dive,required"`
	Unassigned *bool    `json:"unassigned"`
	DriverID   *string  `json:"driver_id" validate:"omitempty,uuid"`
}

// BulkAssignRequest is the body of POST /api/v1/orders/bulk/assign.
type BulkAssignRequest struct {
	Filter      OrderFilterRequest `json:"filter"`
	DriverID    string             `json:"driver_id" validate:"required,uuid"`
	DeliveryFee decimal.Decimal    `json:"delivery_fee"`
}

// BulkChangeStatusRequest is the body of POST /api/v1/orders/bulk/status.
type BulkChangeStatusRequest struct {
	Filter OrderFilterRequest `json:"filter"`
	Target string             `json:"target" validate:"required"`
}

// BulkDeleteRequest is the body of POST /api/v1/orders/bulk/delete.
type BulkDeleteRequest struct {
	Filter OrderFilterRequest `json:"filter"`
}

// BulkResultResponse reports the outcome of a bulk operation.
type BulkResultResponse struct {
	Affected int `json:"affected"`
	Skipped  int `json:"skipped"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	if req.ID != "" {
		var err error
		if orderID, err = parseUUID("id", req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	orderType, err := order.TypeFromString(req.OrderType)
	if err != nil {
		return writeError(ctx, err)
	}

	merchantID, err := parseUUID("merchantID", req.MerchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, orderType, merchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AssignDriver handles POST /api/v1/orders/:orderID/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignDriverRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	driverID, err := parseUUID("driverID", req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, driverID, req.DeliveryFee, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnassignDriver handles POST /api/v1/orders/:orderID/unassign.
func (s *Server) UnassignDriver(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUnassignDriverCommand(orderID, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.unassignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := parseUUID("orderID", ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ChangeOrderStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BulkAssign handles POST /api/v1/orders/bulk/assign.
func (s *Server) BulkAssign(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req BulkAssignRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	filter, err := req.Filter.toPorts()
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := parseUUID("driverID", req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewBulkAssignCommand(filter, driverID, req.DeliveryFee, by)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.bulkAssignHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkResponse(result))
}

// BulkChangeStatus handles POST /api/v1/orders/bulk/status.
func (s *Server) BulkChangeStatus(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req BulkChangeStatusRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	filter, err := req.Filter.toPorts()
	if err != nil {
		return writeError(ctx, err)
	}

	target, err := order.StatusFromString(req.Target)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewBulkChangeStatusCommand(filter, target, by)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.bulkChangeStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkResponse(result))
}

// BulkDelete handles POST /api/v1/orders/bulk/delete.
func (s *Server) BulkDelete(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req BulkDeleteRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	filter, err := req.Filter.toPorts()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewBulkDeleteCommand(filter, by)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.bulkDeleteHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, bulkResponse(result))
}

func (r OrderFilterRequest) toPorts() (ports.OrderFilter, error) {
	var filter ports.OrderFilter

	for _, name := range r.Statuses {
		status, err := order.StatusFromString(name)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	filter.Unassigned = r.Unassigned

	if r.DriverID != nil {
		driverID, err := parseUUID("driverID", *r.DriverID)
		if err != nil {
			return ports.OrderFilter{}, err
		}
		filter.DriverID = &driverID
	}

	return filter, nil
}

func bulkResponse(result commands.BulkResult) BulkResultResponse {
	return BulkResultResponse{
		Affected: result.Affected,
		Skipped:  result.Skipped,
	}
}

// bindAndValidate decodes the JSON body and runs struct-tag validation.
// Both failure modes are client errors and are written directly.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}
	if err := ctx.Validate(req); err != nil {
		message := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: message,
		})
	}
	return nil
}
