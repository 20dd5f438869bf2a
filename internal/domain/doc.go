// Package domain defines the core types for the stockledger inventory system.
//
// This package contains the records persisted in the ledger and the value
// shapes returned by queries, plus the input-normalization rules applied
// before anything is written.
//
// # Core Types
//
// Supplier represents a vendor; products may reference one supplier.
//
// Product represents a stocked item with a quantity, a unit price and an
// optional supplier reference. The creation timestamp is assigned by the
// store and is never settable by callers.
//
// ProductWithSupplier is the read shape produced by the supplier join,
// carrying the supplier's name (empty when the product has none) and the
// row's total value rounded to two decimals.
//
// ReportStats is the single-snapshot inventory aggregate.
//
// # Errors
//
// The package also defines the error taxonomy shared by the repository
// layer: ValidationError for malformed input, UnknownSupplierError for a
// dangling supplier reference, ErrProductNotFound for missing rows, and
// FixtureError for non-fatal fixture loading failures.
package domain
