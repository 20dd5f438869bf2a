package sqlite

import (
	"database/sql"
	"time"

	"stockledger/internal/domain"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullToInt64Ptr safely converts sql.NullInt64 to *int64
func nullToInt64Ptr(ni sql.NullInt64) *int64 {
	if ni.Valid {
		v := ni.Int64
		return &v
	}
	return nil
}

// int64PtrToNull safely converts *int64 to sql.NullInt64
func int64PtrToNull(p *int64) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *p, Valid: true}
}

// ============================================================================
// Supplier Row Scanner
// ============================================================================

// supplierRow holds all columns from a supplier query for scanning
type supplierRow struct {
	ID      int64
	Name    string
	Contact sql.NullString
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match supplierColumns order exactly: id, name, contact
func (r *supplierRow) scanArgs() []any {
	return []any{&r.ID, &r.Name, &r.Contact}
}

// toDomain converts the scanned row to a domain.Supplier
func (r *supplierRow) toDomain() domain.Supplier {
	return domain.Supplier{
		ID:      r.ID,
		Name:    r.Name,
		Contact: nullToString(r.Contact),
	}
}

// supplierColumns is the SELECT column list for supplier queries
const supplierColumns = `id, name, contact`

// ============================================================================
// Product Row Scanner
// ============================================================================

// productRow holds all columns from a product query for scanning
type productRow struct {
	ID         int64
	Name       string
	Quantity   int64
	Price      float64
	SupplierID sql.NullInt64
	CreatedAt  time.Time
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match productColumns order exactly:
// id, name, quantity, price, supplier_id, created_at
func (r *productRow) scanArgs() []any {
	return []any{
		&r.ID,         // 1
		&r.Name,       // 2
		&r.Quantity,   // 3
		&r.Price,      // 4
		&r.SupplierID, // 5
		&r.CreatedAt,  // 6
	}
}

// toDomain converts the scanned row to a domain.Product
func (r *productRow) toDomain() *domain.Product {
	return &domain.Product{
		ID:         r.ID,
		Name:       r.Name,
		Quantity:   r.Quantity,
		Price:      r.Price,
		SupplierID: nullToInt64Ptr(r.SupplierID),
		CreatedAt:  r.CreatedAt,
	}
}

// productColumns is the SELECT column list for product queries
const productColumns = `id, name, quantity, price, supplier_id, created_at`

// ============================================================================
// Joined Row Scanner
// ============================================================================

// joinedRow holds all columns from a product-supplier join for scanning
type joinedRow struct {
	ID           int64
	Name         string
	Quantity     int64
	Price        float64
	TotalValue   float64
	SupplierName sql.NullString
	CreatedAt    time.Time
}

// scanArgs returns pointers to all fields for sql.Scan()
// MUST match joinedColumns order exactly:
// id, name, quantity, price, total_value, supplier_name, created_at
func (r *joinedRow) scanArgs() []any {
	return []any{
		&r.ID,           // 1
		&r.Name,         // 2
		&r.Quantity,     // 3
		&r.Price,        // 4
		&r.TotalValue,   // 5
		&r.SupplierName, // 6
		&r.CreatedAt,    // 7
	}
}

// toDomain converts the scanned row to a domain.ProductWithSupplier
func (r *joinedRow) toDomain() domain.ProductWithSupplier {
	return domain.ProductWithSupplier{
		ID:           r.ID,
		Name:         r.Name,
		Quantity:     r.Quantity,
		Price:        r.Price,
		TotalValue:   r.TotalValue,
		SupplierName: nullToString(r.SupplierName),
		CreatedAt:    r.CreatedAt,
	}
}

// joinedColumns is the SELECT column list for product-supplier join queries
const joinedColumns = `p.id, p.name, p.quantity, p.price,
	ROUND(p.quantity * p.price, 2) AS total_value,
	s.name AS supplier_name, p.created_at`
