package models

import "time"

// Stock is a single inventory item. Quantity is kept >= 0 by the service
// layer; Type is one of the StockType members.
type Stock struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Type        StockType `gorm:"size:50;not null;index" json:"type"`
	Image       string    `gorm:"size:500" json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
