package models

import (
	"time"

	"gorm.io/gorm"
)

// Client is keyed by the identity document: one document maps to exactly
// one canonical full name. Email and phone are the only fields the booking
// flow may update on an existing client.
type Client struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	IDDocument string  `gorm:"column:id_document;uniqueIndex;size:50" json:"id_document"`
	FullName   string  `gorm:"column:full_name;size:100" json:"full_name"`
	Email      *string `gorm:"column:email;size:100" json:"email,omitempty"`
	Phone      string  `gorm:"column:phone;size:20" json:"phone"`
}
