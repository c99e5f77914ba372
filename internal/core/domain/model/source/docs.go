// Package source models the read side of a record source: the schema a
// source describes itself with, the raw records it yields, and the rules
// that turn selected field identifiers into export column labels.
//
// A schema is a list of FieldSpec tagged variants. A Simple field is a leaf
// exporting one value under its own identifier. A Composite field groups
// sub-inputs, each exporting a value under the sub-input's identifier with a
// "Parent (Sub)" label. On top of the schema sit the system fields: a fixed
// set of identifiers (entry id, submission date, payment data and the like)
// every source exposes with labels that never depend on the schema.
//
// Label resolution is deliberately forgiving. An identifier that no longer
// exists in the schema resolves to itself, so reports keep exporting with a
// readable header even after the source's shape changes out from under a
// stale field selection.
package source
