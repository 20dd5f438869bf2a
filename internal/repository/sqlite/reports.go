package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"stockledger/internal/domain"
)

// InventoryReport computes the inventory aggregates in a single query, so
// the snapshot is atomic within one transaction scope. All values are zero
// when no products exist.
func (s *Store) InventoryReport(ctx context.Context) (domain.ReportStats, error) {
	var stats domain.ReportStats
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			SELECT
				COUNT(*) AS total_products,
				IFNULL(SUM(quantity), 0) AS total_units,
				IFNULL(SUM(quantity * price), 0.0) AS total_value,
				IFNULL(AVG(price), 0.0) AS avg_price
			  FROM products
		`).Scan(&stats.TotalProducts, &stats.TotalUnits, &stats.TotalValue, &stats.AvgPrice)
		if err != nil {
			return fmt.Errorf("failed to query report: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ReportStats{}, err
	}
	return stats, nil
}
