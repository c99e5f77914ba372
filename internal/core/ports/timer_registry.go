package ports

import (
	"reporting/internal/core/domain/model/kernel"
	"reporting/internal/core/domain/model/schedule"
)

// TimerRegistry defines the contract for arming per-schedule timers.
// Register replaces any timer already armed for the schedule id, so
// re-arming after a save or a completed run is idempotent.
type TimerRegistry interface {
	// Register arms a timer for the schedule. The cadence decides the next
	// fire instant, anchored at registration time.
	Register(id kernel.UUID, cadence schedule.Cadence) error

	// Cancel disarms the schedule's timer if one is armed. Cancelling an
	// unknown id is a no-op.
	Cancel(id kernel.UUID)
}
