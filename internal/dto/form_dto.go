package dto

type CreateFormRequest struct {
	InitialDate string                `json:"initialDate"`
	FinalDate   string                `json:"finalDate"`
	UserID      uint                  `json:"userId"`
	Details     []CreateDetailRequest `json:"details"`
}

type CreateDetailRequest struct {
	StockID     uint   `json:"stockId"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Type        string `json:"type"`
}
