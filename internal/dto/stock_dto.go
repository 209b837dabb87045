package dto

type CreateStockRequest struct {
	Description string `json:"description"`
	Quantity    *int   `json:"quantity"`
	Type        string `json:"type"`
	Image       string `json:"image"`
}

// UpdateStockRequest carries a partial update: only non-nil fields
// overwrite stored values.
type UpdateStockRequest struct {
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Type        *string `json:"type"`
	Image       *string `json:"image"`
}

// StockQuery holds the optional, conjunctive stock list filters.
type StockQuery struct {
	ID          *uint
	Description string
	Type        string
}
