// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"buyback/internal/core/ports"
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

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// RefundRepoFactory provides access to the refund repository within a transaction.
	RefundRepoFactory interface {
		RefundRepository() ports.RefundRepository
	}

	// OutboxFactory provides access to the notification outbox within a transaction.
	OutboxFactory interface {
		NotificationOutbox() ports.NotificationOutbox
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions for partner-only operations,
	// such as wallet top-ups and pickup-agent management.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// OrderPartnerUoW manages transactions spanning an order, the acting
	// partner and the notification outbox. Used for the claim protocol and
	// for in-flight order operations performed by partners and agents.
	OrderPartnerUoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		OutboxFactory
	}

	// OrderPartnerUoWFactory creates new order/partner unit of work instances.
	OrderPartnerUoWFactory interface {
		Create() OrderPartnerUoW
	}

	// RefundUoW manages transactions for refund settlement: the record flips
	// to refunded and the wallet is credited in the same transaction.
	RefundUoW interface {
		TxManager
		RefundRepoFactory
		PartnerRepoFactory
		OutboxFactory
	}

	// RefundUoWFactory creates new refund unit of work instances.
	RefundUoWFactory interface {
		Create() RefundUoW
	}

	// UoW manages transactions across all aggregates. Used for commands that
	// undo claims: the order reverts, the refund record is created and the
	// partner is notified atomically.
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		RefundRepoFactory
		OutboxFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
