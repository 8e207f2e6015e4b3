// Package postgres provides the GORM-based Unit of Work for label
// persistence. A unit of work owns at most one transaction at a time and
// hands out repositories bound to it.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.LabelRepository().Save(ctx, orderID, labels); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork.
package postgres

import (
	"context"

	"shippinglabel/internal/adapters/out/postgres/labelrepo"
	"shippinglabel/internal/core/domain/model/kernel"
	"shippinglabel/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is a write made through the unit of work.
type trackedAggregate struct {
	OrderID   kernel.OrderID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no transaction and no tracked writes.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the orders
// whose labels were written through it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the active transaction.
// Returns gorm.ErrInvalidTransaction if none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction.
// Returns gorm.ErrInvalidTransaction if none is active, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// LabelRepository returns a label repository bound to the active transaction,
// or to the connection pool when none is active.
func (uow *GormUnitOfWork) LabelRepository() ports.LabelRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return labelrepo.NewGormLabelRepository(db, uow)
}

// TrackAggregate records a write for the given order. Repositories call it
// after every successful save.
func (uow *GormUnitOfWork) TrackAggregate(orderID kernel.OrderID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		OrderID:   orderID,
		Aggregate: aggregate,
	})
}

// TrackedOrders lists the orders written through this unit of work, in
// write order, each once.
func (uow *GormUnitOfWork) TrackedOrders() []kernel.OrderID {
	seen := make(map[kernel.OrderID]struct{}, len(uow.trackedAggregates))
	orders := make([]kernel.OrderID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		if _, ok := seen[t.OrderID]; ok {
			continue
		}
		seen[t.OrderID] = struct{}{}
		orders = append(orders, t.OrderID)
	}
	return orders
}
