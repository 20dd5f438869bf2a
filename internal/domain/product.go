package domain

import "time"

// Product represents a stocked item as persisted.
type Product struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Quantity   int64     `json:"quantity"`
	Price      float64   `json:"price"`
	SupplierID *int64    `json:"supplier_id,omitempty"` // nil when the product has no supplier
	CreatedAt  time.Time `json:"created_at"`            // assigned by the store at insertion
}

// ProductWithSupplier is the read shape produced by joining a product with
// its supplier. SupplierName is empty when the product has no supplier.
type ProductWithSupplier struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Quantity     int64     `json:"quantity"`
	Price        float64   `json:"price"`
	TotalValue   float64   `json:"total_value"` // quantity * price, rounded to 2 decimals
	SupplierName string    `json:"supplier_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
