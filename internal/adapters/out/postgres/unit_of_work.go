// Package postgres implements the persistence ports on top of GORM. The
// unit of work here wraps a GORM transaction and hands out repositories
// bound to it, so a command handler's reads and writes either all commit
// or all roll back.
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.ScheduleRepository().Add(ctx, schedule); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Instances are not safe for concurrent use. Goroutines each take their
// own from the factory.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"reporting/internal/adapters/out/postgres/schedulerepo"
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/ports"
)

// trackedAggregate records one aggregate touched inside the transaction.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory builds unit-of-work instances over a shared GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork is the ports.UnitOfWork implementation. Besides the
// transaction itself it collects the schedules written during it, which
// leaves room for post-commit processing such as event publication.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin opens a transaction. A second call while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finishes the open transaction. Without one it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback abandons the open transaction. Without one it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ScheduleRepository returns a repository running inside the open
// transaction, or against the bare connection before Begin. Writes through
// it are tracked on this unit of work.
func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return schedulerepo.NewGormScheduleRepository(db, uow)
}

// TrackAggregate is called by the repositories for every Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
