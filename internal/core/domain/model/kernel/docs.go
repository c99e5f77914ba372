// Package kernel holds the value objects shared by every aggregate in the
// reporting domain.
//
//   - UUID wraps a validated identifier. The zero value is deliberately
//     unusable; construct one with NewUUID, UUIDFromString, or UUIDFromBytes.
//   - TimeOfDay captures the wall-clock hour and minute at which a schedule
//     fires, independent of any particular date.
//
// Both types are immutable and safe for concurrent use. Aggregates embed
// them by value and rely on their Validate methods to reject half-built
// instances at construction time.
package kernel
