package repository

import (
	"context"

	"stockledger/internal/domain"
)

// Repository defines the data-access surface consumed by the shell.
type Repository interface {
	// Suppliers
	CreateSupplier(ctx context.Context, name, contact string) (int64, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	SupplierExists(ctx context.Context, id int64) (bool, error)

	// Products
	CreateProduct(ctx context.Context, name string, quantity int64, price float64, supplierID *int64) (int64, error)
	UpdateProduct(ctx context.Context, id int64, name string, quantity int64, price float64, supplierID *int64) error
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProductsJoined(ctx context.Context) ([]domain.ProductWithSupplier, error)
	SearchProductsByName(ctx context.Context, query string) ([]domain.ProductWithSupplier, error)

	// Reports
	InventoryReport(ctx context.Context) (domain.ReportStats, error)

	// Fixtures
	LoadFixture(ctx context.Context, path string) error

	// Close releases resources
	Close() error
}
