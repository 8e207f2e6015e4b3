// Package commands contains the operations that change the shipping label
// state of an order. Every command is validated on construction, applied to
// the order's live state through the reducer, and persists the labels it
// changed in one transaction.
package commands

import (
	"context"

	"shippinglabel/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LabelRepoFactory provides access to the label repository within a transaction.
	LabelRepoFactory interface {
		LabelRepository() ports.LabelRepository
	}

	// LabelUoW manages transactions for label persistence.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.LabelRepository().Save(ctx, orderID, labels)
	//
	//   err = uow.Commit(ctx)
	LabelUoW interface {
		TxManager
		LabelRepoFactory
	}

	// LabelUoWFactory creates new label unit of work instances.
	LabelUoWFactory interface {
		Create() LabelUoW
	}
)
