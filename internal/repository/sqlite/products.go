package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"stockledger/internal/domain"
)

// checkSupplierRef validates an optional supplier reference before any
// write begins. A nil id is absent and passes; a non-nil id must name an
// existing supplier or the operation fails with *domain.UnknownSupplierError.
func (s *Store) checkSupplierRef(ctx context.Context, supplierID *int64) error {
	if supplierID == nil {
		return nil
	}
	exists, err := s.SupplierExists(ctx, *supplierID)
	if err != nil {
		return err
	}
	if !exists {
		return &domain.UnknownSupplierError{ID: *supplierID}
	}
	return nil
}

// CreateProduct validates the supplier reference, normalizes the name,
// inserts a product and returns the store-assigned id.
func (s *Store) CreateProduct(ctx context.Context, name string, quantity int64, price float64, supplierID *int64) (int64, error) {
	if err := s.checkSupplierRef(ctx, supplierID); err != nil {
		return 0, err
	}
	name, err := domain.NormalizeName("product name", name)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO products (name, quantity, price, supplier_id) VALUES (?, ?, ?, ?)
		`, name, quantity, price, int64PtrToNull(supplierID))
		if err != nil {
			return fmt.Errorf("failed to insert product: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read product id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateProduct performs a full replace of name, quantity, price and
// supplier reference for the row matching id. A missing id is a silent
// no-op: zero rows affected is the underlying statement's semantics, not
// an error.
func (s *Store) UpdateProduct(ctx context.Context, id int64, name string, quantity int64, price float64, supplierID *int64) error {
	if err := s.checkSupplierRef(ctx, supplierID); err != nil {
		return err
	}
	name, err := domain.NormalizeName("product name", name)
	if err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE products
			   SET name = ?, quantity = ?, price = ?, supplier_id = ?
			 WHERE id = ?
		`, name, quantity, price, int64PtrToNull(supplierID), id)
		if err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
}

// DeleteProduct deletes the row matching id; a missing id is a silent
// no-op with the same zero-rows-affected semantics as UpdateProduct.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

// GetProduct returns the full field set of the matching product including
// its creation timestamp, or domain.ErrProductNotFound when no row matches.
func (s *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var product *domain.Product
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var r productRow
		err := tx.QueryRowContext(ctx, `
			SELECT `+productColumns+` FROM products WHERE id = ?
		`, id).Scan(r.scanArgs()...)
		if err == sql.ErrNoRows {
			return domain.ErrProductNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to query product: %w", err)
		}
		product = r.toDomain()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// ListProductsJoined returns every product left-joined with its supplier's
// name, ordered by product name ascending with id as tie-break. Each row
// carries total_value = round(quantity * price, 2).
func (s *Store) ListProductsJoined(ctx context.Context) ([]domain.ProductWithSupplier, error) {
	return s.queryJoined(ctx, `
		SELECT `+joinedColumns+`
		  FROM products p
	 LEFT JOIN suppliers s ON p.supplier_id = s.id
		 ORDER BY p.name, p.id
	`)
}

// SearchProductsByName returns products whose name contains the trimmed
// query, case-insensitively, with the same supplier join as
// ListProductsJoined, ordered by name ascending.
func (s *Store) SearchProductsByName(ctx context.Context, query string) ([]domain.ProductWithSupplier, error) {
	like := "%" + strings.TrimSpace(query) + "%"
	return s.queryJoined(ctx, `
		SELECT `+joinedColumns+`
		  FROM products p
	 LEFT JOIN suppliers s ON p.supplier_id = s.id
		 WHERE lower(p.name) LIKE lower(?)
		 ORDER BY p.name
	`, like)
}

func (s *Store) queryJoined(ctx context.Context, query string, args ...any) ([]domain.ProductWithSupplier, error) {
	var products []domain.ProductWithSupplier
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to query products: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r joinedRow
			if err := rows.Scan(r.scanArgs()...); err != nil {
				return fmt.Errorf("failed to scan product: %w", err)
			}
			products = append(products, r.toDomain())
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}
