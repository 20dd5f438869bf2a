package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"stockledger/internal/domain"
)

// CreateSupplier normalizes the inputs, inserts a supplier and returns the
// store-assigned id. An empty trimmed name is rejected with a
// *domain.ValidationError before any write.
func (s *Store) CreateSupplier(ctx context.Context, name, contact string) (int64, error) {
	name, err := domain.NormalizeName("supplier name", name)
	if err != nil {
		return 0, err
	}
	contactNull := stringToNull(domain.NormalizeOptional(contact))

	var id int64
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO suppliers (name, contact) VALUES (?, ?)
		`, name, contactNull)
		if err != nil {
			return fmt.Errorf("failed to insert supplier: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read supplier id: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// ListSuppliers returns all suppliers sorted by name ascending.
func (s *Store) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `
			SELECT `+supplierColumns+` FROM suppliers ORDER BY name
		`)
		if err != nil {
			return fmt.Errorf("failed to query suppliers: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var r supplierRow
			if err := rows.Scan(r.scanArgs()...); err != nil {
				return fmt.Errorf("failed to scan supplier: %w", err)
			}
			suppliers = append(suppliers, r.toDomain())
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

// SupplierExists reports whether a supplier row with the given id is
// present. Used internally before product writes and exposed for reuse.
func (s *Store) SupplierExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var one int64
		err := tx.QueryRowContext(ctx, `
			SELECT 1 FROM suppliers WHERE id = ?
		`, id).Scan(&one)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to query supplier: %w", err)
		}
		exists = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return exists, nil
}
