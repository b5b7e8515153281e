package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room is a read-only catalog entry from the engine's perspective; only
// active rooms participate in availability and booking.
type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name          string         `gorm:"column:name;size:100" json:"name"`
	Capacity      int            `gorm:"column:capacity" json:"capacity"`
	PricePerNight float64        `gorm:"column:price_per_night" json:"price_per_night"`
	Description   string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Features      datatypes.JSON `gorm:"column:features" json:"features,omitempty"`
	Images        datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	IsActive      bool           `gorm:"column:is_active;default:true" json:"is_active"`
}
