package cmd

import (
	"log/slog"

	"fleetledger/internal/adapters/in/http"
	"fleetledger/internal/adapters/out/postgres"
	"fleetledger/internal/core/application/usecases/commands"
	"fleetledger/internal/core/application/usecases/queries"
	"fleetledger/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot assembles the application graph: repositories behind the
// unit-of-work factory, command and query handlers on top, and the adapters
// consuming them.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignDriverCommandHandler() commands.UnassignDriverCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkAssignCommandHandler() commands.BulkAssignCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkAssignCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkChangeStatusCommandHandler() commands.BulkChangeStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkChangeStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateBulkDeleteCommandHandler() commands.BulkDeleteCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBulkDeleteCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateSettleDriverCommandHandler() commands.SettleDriverCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateReverseSettlementCommandHandler() commands.ReverseSettlementCommandHandler {
	var f commands.SettlementUoWFactory = FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReverseSettlementCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManualDailyCommandHandler() commands.CreateManualDailyCommandHandler {
	var f commands.ManualDailyUoWFactory = FuncManualDailyUoWFactory(func() commands.ManualDailyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManualDailyCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateManualDailyCommandHandler() commands.UpdateManualDailyCommandHandler {
	var f commands.ManualDailyUoWFactory = FuncManualDailyUoWFactory(func() commands.ManualDailyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateManualDailyCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteManualDailyCommandHandler() commands.DeleteManualDailyCommandHandler {
	var f commands.ManualDailyUoWFactory = FuncManualDailyUoWFactory(func() commands.ManualDailyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteManualDailyCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOutstandingQueryHandler() queries.GetOutstandingQueryHandler {
	return queries.NewGetOutstandingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPaymentHistoryQueryHandler() queries.GetPaymentHistoryQueryHandler {
	return queries.NewGetPaymentHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDebtSummaryQueryHandler() queries.GetDebtSummaryQueryHandler {
	return queries.NewGetDebtSummaryQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound REST adapter over every handler.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateUnassignDriverCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateBulkAssignCommandHandler(),
		c.CreateBulkChangeStatusCommandHandler(),
		c.CreateBulkDeleteCommandHandler(),
		c.CreateCreateDriverCommandHandler(),
		c.CreateSettleDriverCommandHandler(),
		c.CreateReverseSettlementCommandHandler(),
		c.CreateCreateManualDailyCommandHandler(),
		c.CreateUpdateManualDailyCommandHandler(),
		c.CreateDeleteManualDailyCommandHandler(),
		c.CreateGetOutstandingQueryHandler(),
		c.CreateGetPaymentHistoryQueryHandler(),
		c.CreateGetDebtSummaryQueryHandler(),
	)
}

// CreateJobManager assembles the background job graph.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetDebtSummaryQueryHandler(), logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncManualDailyUoWFactory func() commands.ManualDailyUoW

func (f FuncManualDailyUoWFactory) Create() commands.ManualDailyUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}
