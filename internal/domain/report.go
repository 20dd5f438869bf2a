package domain

// ReportStats is a single atomic snapshot of the inventory aggregates.
// All fields are zero when the product table is empty.
type ReportStats struct {
	TotalProducts int64   `json:"total_products"`
	TotalUnits    int64   `json:"total_units"`
	TotalValue    float64 `json:"total_value"`
	AvgPrice      float64 `json:"avg_price"`
}
