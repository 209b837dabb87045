package models

import "time"

// Form is a dated work order owned by a user. Its line items are
// DetailForm rows; form and details are always created in one
// transaction.
type Form struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	InitialDate time.Time    `gorm:"not null" json:"initialDate"`
	FinalDate   time.Time    `gorm:"not null" json:"finalDate"`
	UserID      uint         `gorm:"not null;index" json:"userId"`
	Details     []DetailForm `gorm:"foreignKey:FormID" json:"details"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// DetailForm is one line item of a Form, referencing the stock it moves.
type DetailForm struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FormID      uint       `gorm:"not null;index" json:"formId"`
	StockID     uint       `gorm:"not null;index" json:"stockId"`
	Description string     `gorm:"size:255" json:"description"`
	Quantity    int        `gorm:"not null" json:"quantity"`
	Type        DetailType `gorm:"size:20;not null" json:"type"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
