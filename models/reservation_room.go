package models

import "gorm.io/gorm"

// ReservationRoom joins a lodging reservation to one of its rooms. Rows are
// inserted in the same transaction as the reservation and never updated.
type ReservationRoom struct {
	gorm.Model
	ReservationID uint `gorm:"index;column:reservation_id" json:"reservation_id"`
	RoomID        uint `gorm:"index;column:room_id" json:"room_id"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
