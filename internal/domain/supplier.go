package domain

// Supplier represents a vendor that products may reference.
type Supplier struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"` // empty when the column is null
}
