// Package commands holds the write-side use cases: creating, updating,
// deleting, and running schedules. Each operation is a command value paired
// with a handler that validates it, opens a unit of work, and persists the
// result.
package commands

import (
	"context"

	"reporting/internal/core/ports"
)

// The handlers depend on narrow unit-of-work interfaces rather than the
// full ports.UnitOfWork so tests can substitute lightweight fakes.
type (
	// TxManager covers the transaction lifecycle a handler drives.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ScheduleRepoFactory yields the repository bound to the current
	// transaction.
	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	// ScheduleUoW is what a schedule command handler needs from a unit
	// of work.
	ScheduleUoW interface {
		TxManager
		ScheduleRepoFactory
	}

	// ScheduleUoWFactory creates one ScheduleUoW per handled command.
	ScheduleUoWFactory interface {
		Create() ScheduleUoW
	}
)
