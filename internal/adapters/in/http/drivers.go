package http

import (
	"net/http"
	"time"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/application/usecases/queries"
	"fleetledger/internal/core/domain/model/driver"
	"fleetledger/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	ID                   string          `json:"id" validate:"omitempty,uuid"`
	Name                 string          `json:"name" validate:"required"`
	CommissionType       string          `json:"commission_type" validate:"required"`
	CommissionRate       decimal.Decimal `json:"commission_rate"`
	WalletOpeningBalance decimal.Decimal `json:"wallet_opening_balance"`
}

// CreateDriverResponse returns the identifier of the created driver.
type CreateDriverResponse struct {
	ID string `json:"id"`
}

// SettleDriverResponse returns the identifier of the payment written by a
// successful settlement.
type SettleDriverResponse struct {
	PaymentID string `json:"payment_id"`
}

// OutstandingResponse is the driver's current unsettled position.
type OutstandingResponse struct {
	DriverID     string                 `json:"driver_id"`
	DriverName   string                 `json:"driver_name"`
	OrdersCount  int                    `json:"orders_count"`
	TotalFees    decimal.Decimal        `json:"total_fees"`
	CompanyShare decimal.Decimal        `json:"company_share"`
	DriverShare  decimal.Decimal        `json:"driver_share"`
	Orders       []OutstandingOrderItem `json:"orders"`
	Dailies      []OutstandingDailyItem `json:"manual_dailies"`
}

// OutstandingOrderItem is one delivered, unsettled order in the position.
type OutstandingOrderItem struct {
	ID          string          `json:"id"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	DeliveredAt *time.Time      `json:"delivered_at"`
}

// OutstandingDailyItem is one unsettled manual daily entry in the position.
type OutstandingDailyItem struct {
	ID                string          `json:"id"`
	DayDate           time.Time       `json:"day_date"`
	OrdersCount       int             `json:"orders_count"`
	TotalDeliveryFees decimal.Decimal `json:"total_delivery_fees"`
	Amount            decimal.Decimal `json:"amount"`
}

// PaymentHistoryItemResponse is one past settlement. The amount is the sum
// collected at settlement time; the other figures are recomputed against the
// rows that still exist.
type PaymentHistoryItemResponse struct {
	PaymentID    string          `json:"payment_id"`
	CreatedAt    time.Time       `json:"created_at"`
	Amount       decimal.Decimal `json:"amount"`
	OrdersCount  int             `json:"orders_count"`
	TotalFees    decimal.Decimal `json:"total_fees"`
	CompanyShare decimal.Decimal `json:"company_share"`
}

// DebtSummaryItemResponse is one driver's outstanding totals in the report.
type DebtSummaryItemResponse struct {
	DriverID     string          `json:"driver_id"`
	DriverName   string          `json:"driver_name"`
	OrdersCount  int             `json:"orders_count"`
	TotalFees    decimal.Decimal `json:"total_fees"`
	CompanyShare decimal.Decimal `json:"company_share"`
	DriverShare  decimal.Decimal `json:"driver_share"`
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	if req.ID != "" {
		var err error
		if driverID, err = parseUUID("id", req.ID); err != nil {
			return writeError(ctx, err)
		}
	}

	commissionType, err := driver.CommissionTypeFromString(req.CommissionType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.Name, commissionType, req.CommissionRate, req.WalletOpeningBalance)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDriverResponse{ID: driverID.String()})
}

// SettleDriver handles POST /api/v1/drivers/:driverID/settle.
func (s *Server) SettleDriver(ctx echo.Context) error {
	by, err := actorFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	driverID, err := parseUUID("driverID", ctx.Param("driverID"))
	if err != nil {
		return writeError(ctx, err)
	}

	paymentID := kernel.NewUUID()

	cmd, err := commands.NewSettleDriverCommand(paymentID, driverID, by)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.settleDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SettleDriverResponse{PaymentID: paymentID.String()})
}

// GetOutstanding handles GET /api/v1/drivers/:driverID/outstanding.
func (s *Server) GetOutstanding(ctx echo.Context) error {
	driverID, err := parseUUID("driverID", ctx.Param("driverID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOutstandingQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	outstanding, err := s.getOutstandingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	orders := make([]OutstandingOrderItem, len(outstanding.Orders))
	for i, item := range outstanding.Orders {
		orders[i] = OutstandingOrderItem{
			ID:          item.ID.String(),
			DeliveryFee: item.DeliveryFee,
			DeliveredAt: item.DeliveredAt,
		}
	}

	dailies := make([]OutstandingDailyItem, len(outstanding.Dailies))
	for i, item := range outstanding.Dailies {
		dailies[i] = OutstandingDailyItem{
			ID:                item.ID.String(),
			DayDate:           item.DayDate,
			OrdersCount:       item.OrdersCount,
			TotalDeliveryFees: item.TotalDeliveryFees,
			Amount:            item.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, OutstandingResponse{
		DriverID:     outstanding.DriverID.String(),
		DriverName:   outstanding.DriverName,
		OrdersCount:  outstanding.OrdersCount,
		TotalFees:    outstanding.TotalFees,
		CompanyShare: outstanding.CompanyShare,
		DriverShare:  outstanding.DriverShare,
		Orders:       orders,
		Dailies:      dailies,
	})
}

// GetPaymentHistory handles GET /api/v1/drivers/:driverID/payments.
func (s *Server) GetPaymentHistory(ctx echo.Context) error {
	driverID, err := parseUUID("driverID", ctx.Param("driverID"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetPaymentHistoryQuery(driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	history, err := s.getPaymentHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PaymentHistoryItemResponse, len(history))
	for i, item := range history {
		response[i] = PaymentHistoryItemResponse{
			PaymentID:    item.PaymentID.String(),
			CreatedAt:    item.CreatedAt,
			Amount:       item.Amount,
			OrdersCount:  item.OrdersCount,
			TotalFees:    item.TotalFees,
			CompanyShare: item.CompanyShare,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDebtSummary handles GET /api/v1/reports/debt-summary.
func (s *Server) GetDebtSummary(ctx echo.Context) error {
	summary, err := s.getDebtSummaryHandler.Handle(
		ctx.Request().Context(), queries.NewGetDebtSummaryQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]DebtSummaryItemResponse, len(summary))
	for i, item := range summary {
		response[i] = DebtSummaryItemResponse{
			DriverID:     item.DriverID.String(),
			DriverName:   item.DriverName,
			OrdersCount:  item.OrdersCount,
			TotalFees:    item.TotalFees,
			CompanyShare: item.CompanyShare,
			DriverShare:  item.DriverShare,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
