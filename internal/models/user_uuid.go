package models

import (
	"time"

	"github.com/google/uuid"
)

// UserUUID is an auxiliary per-user identifier record, created on demand.
type UserUUID struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Value     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
