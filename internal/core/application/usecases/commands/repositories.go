// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleetledger/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DriverRepoFactory provides access to driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ManualDailyRepoFactory provides access to manual daily repository within a transaction.
	ManualDailyRepoFactory interface {
		ManualDailyRepository() ports.ManualDailyRepository
	}

	// PaymentRepoFactory provides access to payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	// DriverUoWFactory creates new driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// AssignmentUoW manages transactions that touch both an order and the
	// driver being assigned to it.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// ManualDailyUoW manages transactions for manual daily entries. The
	// driver repository is included to verify the referenced driver exists.
	ManualDailyUoW interface {
		TxManager
		ManualDailyRepoFactory
		DriverRepoFactory
	}

	// ManualDailyUoWFactory creates new manual daily unit of work instances.
	ManualDailyUoWFactory interface {
		Create() ManualDailyUoW
	}

	// SettlementUoW manages transactions spanning every ledger aggregate.
	// Settlement and reversal atomically touch the driver row, the
	// reconciled flags of orders and dailies, and the payment record.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		ManualDailyRepoFactory
		PaymentRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}
)
