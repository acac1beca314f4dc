package http

import (
	"net/http"
	"time"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateManualDailyRequest is the body of POST /api/v1/manual-dailies.
// The amount is the company share already agreed for that day.
type CreateManualDailyRequest struct {
	ID                string          `json:"id" validate:"omitempty,uuid"`
	DriverID          string          `json:"driver_id" validate:"required,uuid"`
	DayDate           time.Time       `json:"day_date" validate:"required"`
	OrdersCount       int             `json:"orders_count" validate:"min=0"`
	TotalDeliveryFees decimal.Decimal `json:"total_delivery_fees"`
	Amount            decimal.Decimal `json:"amount"`
}

// CreateManualDailyResponse returns the identifier of the created entry.
type CreateManualDailyResponse struct {
	ID string `json:"id"`
}

// UpdateManualDailyRequest is the body of PUT /api/v1/manual-dailies/:dailyID.
type UpdateManualDailyRequest struct {
	OrdersCount       int             `json:"orders_count" validate:"min=0"`
	TotalDeliveryFees decimal.Decimal `json:"total_delivery_fees"`
	Amount            decimal.Decimal `json:"amount"`
}

// CreateManualDaily handles POST /api/v1/manual-dailies.
func (s *Server) CreateManualDaily(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateManualDailyRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	dailyID := kernel.NewUUID()
	if req.ID != "" {
		if dailyID, err = parseUUID("id", req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	driverID, err := parseUUID("driverID", req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateManualDailyCommand(
		dailyID, driverID, req.DayDate, req.OrdersCount,
		req.TotalDeliveryFees, req.Amount, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createManualDailyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateManualDailyResponse{ID: dailyID.String()})
}

// UpdateManualDaily handles PUT /api/v1/manual-dailies/:dailyID.
func (s *Server) UpdateManualDaily(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	dailyID, err := parseUUID("dailyID", ctx.Param("dailyID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateManualDailyRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateManualDailyCommand(
		dailyID, req.OrdersCount, req.TotalDeliveryFees, req.Amount, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateManualDailyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteManualDaily handles DELETE /api/v1/manual-dailies/:dailyID.
func (s *Server) DeleteManualDaily(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	dailyID, err := parseUUID("dailyID", ctx.Param("dailyID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteManualDailyCommand(dailyID, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteManualDailyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReverseSettlement handles DELETE /api/v1/payments/:paymentID.
func (s *Server) ReverseSettlement(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentID, err := parseUUID("paymentID", ctx.Param("paymentID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReverseSettlementCommand(paymentID, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reverseSettlementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
