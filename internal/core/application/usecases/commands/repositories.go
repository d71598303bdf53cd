// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"tripmanager/internal/core/ports"
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

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DestinationRepoFactory provides access to the destination repository within a transaction.
	DestinationRepoFactory interface {
		DestinationRepository() ports.DestinationRepository
	}

	// OrderUoW manages transactions for the order command handlers.
	// Every order command reads users (authorization) and possibly destinations,
	// but only ever writes order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		DestinationRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
