// Package http is the inbound REST adapter. It translates requests into
// commands and queries, parses the acting party from headers supplied by the
// external authentication layer, and maps domain errors to HTTP statuses.
package http

import (
	"net/http"

	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/application/usecases/queries"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Server wires the REST surface to application command and query handlers.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	assignDriverHandler      commands.AssignDriverCommandHandler
	unassignDriverHandler    commands.UnassignDriverCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	bulkAssignHandler        commands.BulkAssignCommandHandler
	bulkChangeStatusHandler  commands.BulkChangeStatusCommandHandler
	bulkDeleteHandler        commands.BulkDeleteCommandHandler

	createDriverHandler      commands.CreateDriverCommandHandler
	settleDriverHandler      commands.SettleDriverCommandHandler
	reverseSettlementHandler commands.ReverseSettlementCommandHandler

	createManualDailyHandler commands.CreateManualDailyCommandHandler
	updateManualDailyHandler commands.UpdateManualDailyCommandHandler
	deleteManualDailyHandler commands.DeleteManualDailyCommandHandler

	getOutstandingHandler    queries.GetOutstandingQueryHandler
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler
	getDebtSummaryHandler    queries.GetDebtSummaryQueryHandler
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	unassignDriverHandler commands.UnassignDriverCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	bulkAssignHandler commands.BulkAssignCommandHandler,
	bulkChangeStatusHandler commands.BulkChangeStatusCommandHandler,
	bulkDeleteHandler commands.BulkDeleteCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	settleDriverHandler commands.SettleDriverCommandHandler,
	reverseSettlementHandler commands.ReverseSettlementCommandHandler,
	createManualDailyHandler commands.CreateManualDailyCommandHandler,
	updateManualDailyHandler commands.UpdateManualDailyCommandHandler,
	deleteManualDailyHandler commands.DeleteManualDailyCommandHandler,
	getOutstandingHandler queries.GetOutstandingQueryHandler,
	getPaymentHistoryHandler queries.GetPaymentHistoryQueryHandler,
	getDebtSummaryHandler queries.GetDebtSummaryQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		assignDriverHandler:      assignDriverHandler,
		unassignDriverHandler:    unassignDriverHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		bulkAssignHandler:        bulkAssignHandler,
		bulkChangeStatusHandler:  bulkChangeStatusHandler,
		bulkDeleteHandler:        bulkDeleteHandler,
		createDriverHandler:      createDriverHandler,
		settleDriverHandler:      settleDriverHandler,
		reverseSettlementHandler: reverseSettlementHandler,
		createManualDailyHandler: createManualDailyHandler,
		updateManualDailyHandler: updateManualDailyHandler,
		deleteManualDailyHandler: deleteManualDailyHandler,
		getOutstandingHandler:    getOutstandingHandler,
		getPaymentHistoryHandler: getPaymentHistoryHandler,
		getDebtSummaryHandler:    getDebtSummaryHandler,
	}
}

// RegisterRoutes mounts the REST surface under /api/v1 and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderID/assign", s.AssignDriver)
	v1.POST("/orders/:orderID/unassign", s.UnassignDriver)
	v1.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	v1.POST("/orders/bulk/assign", s.BulkAssign)
	v1.POST("/orders/bulk/status", s.BulkChangeStatus)
	v1.POST("/orders/bulk/delete", s.BulkDelete)

	v1.POST("/drivers", s.CreateDriver)
	v1.GET("/drivers/:driverID/outstanding", s.GetOutstanding)
	v1.GET("/drivers/:driverID/payments", s.GetPaymentHistory)
	v1.POST("/drivers/:driverID/settle", s.SettleDriver)

	v1.DELETE("/payments/:paymentID", s.ReverseSettlement)

	v1.POST("/manual-dailies", s.CreateManualDaily)
	v1.PUT("/manual-dailies/:dailyID", s.UpdateManualDaily)
	v1.DELETE("/manual-dailies/:dailyID", s.DeleteManualDaily)

	v1.GET("/reports/debt-summary", s.GetDebtSummary)
}

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call ctx.Validate on bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request DTOs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags of a bound request body.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
