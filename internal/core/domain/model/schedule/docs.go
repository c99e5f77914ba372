// Package schedule provides domain entities and business logic for recurring
// report schedules in the reporting system. It implements the Schedule
// aggregate root together with the cadence arithmetic that determines when a
// schedule fires.
//
// The package includes:
//   - Schedule: The aggregate root owning cadence, source binding, field
//     selection, delivery settings, and the incremental-export watermark
//   - Cadence: A value object computing the next fire instant and the
//     recurring backstop interval
//   - Recurrence, Status: enumerations with validated values
//   - Delivery: A value object for addressing and wording the report message
//
// Key business rules:
//   - A schedule without a configured time of day is never armed; all
//     scheduling operations against it are no-ops
//   - The repeat multiplier is clamped to at least 1
//   - The watermark only advances when a run completes, and never moves
//     backwards
//   - Next fire instants are computed fresh from the current wall clock,
//     never by adding fixed offsets to a stale base time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package schedule
