// Package repository defines the data access interface for stockledger.
//
// This package provides the repository abstraction consumed by the
// presentation shell. The actual implementation is in the sqlite
// subpackage.
//
// # Repository Interface
//
// The Repository interface defines all data access methods for suppliers,
// products, the supplier join views and the inventory report, plus fixture
// loading for demos.
//
// # SQLite Implementation
//
// The sqlite implementation owns the physical connection, the idempotent
// schema bootstrap, and all query text. Every operation runs inside one
// scoped transaction: a dedicated connection is acquired, foreign-key
// enforcement is enabled on it, and the scope commits on success or rolls
// back entirely on failure, releasing the connection on every exit path.
//
// # Referential Integrity
//
// Supplier references on products are validated at this boundary before
// any write begins, in addition to the store's own foreign-key
// enforcement. A dangling reference surfaces as *domain.UnknownSupplierError
// and leaves the product table unchanged.
//
// # Testing
//
// The sqlite repository is tested against in-memory databases covering
// round-trips, join and aggregate correctness, and no-op delete/update
// semantics.
package repository
