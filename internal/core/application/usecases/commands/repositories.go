// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit event publishing.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// QueueRepoFactory provides access to the queue repository within a transaction.
	QueueRepoFactory interface {
		QueueRepository() ports.QueueRepository
	}

	// TransactionRepoFactory provides access to the transaction repository within a transaction.
	TransactionRepoFactory interface {
		TransactionRepository() ports.TransactionRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CreateOrderUoW manages transactions for order creation: pricing reads,
	// the order insert, and the queue slot insert commit together.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		QueueRepoFactory
		MenuItemRepoFactory
	}

	// CreateOrderUoWFactory creates unit of work instances for order creation.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// UpdateOrderStatusUoW manages transactions for status transitions: the
	// status write, the transaction record, and the queue compaction commit
	// together or not at all.
	UpdateOrderStatusUoW interface {
		TxManager
		OrderRepoFactory
		QueueRepoFactory
		TransactionRepoFactory
		RestaurantRepoFactory
	}

	// UpdateOrderStatusUoWFactory creates unit of work instances for status transitions.
	UpdateOrderStatusUoWFactory interface {
		Create() UpdateOrderStatusUoW
	}
)
