package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Handlers never
// share one, which keeps concurrent runs from seeing each other's
// uncommitted schedule state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary around schedule mutations. Callers
// drive the lifecycle explicitly: Begin, do work through the repository,
// then Commit or Rollback.
type UnitOfWork interface {
	// Begin opens a database transaction. Calling it when one is already
	// open is a no-op.
	Begin(ctx context.Context) error

	// Commit finishes the open transaction. Fails when none was begun.
	Commit(ctx context.Context) error

	// Rollback abandons the open transaction. Fails when none was begun.
	Rollback(ctx context.Context) error

	// ScheduleRepository returns a repository bound to the open
	// transaction, or to the bare connection before Begin.
	ScheduleRepository() ScheduleRepository
}
