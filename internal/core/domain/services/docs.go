// Package services provides domain services that orchestrate business
// operations across multiple domain models in the reporting system. It
// implements logic that spans a schedule's field selection and a record
// source's schema and therefore does not belong to either aggregate.
//
// The package includes:
//   - ReportBuilder: A domain service projecting source records onto a field selection
//   - Report: The tabular result with CSV serialization
//   - ExportFileName: Collision-safe naming for per-run export files
package services
