package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation types. Full-day bookings have no room assignment and no
// check-out date; lodging bookings own one or more room links.
const (
	TypeFullDay = "fullday"
	TypeLodging = "lodging"
)

// Reservation statuses. Cancelled and completed are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Reservation struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:64" json:"reference_code"`
	ClientID      uint   `gorm:"index;column:client_id" json:"client_id"`

	Type         string     `gorm:"column:reservation_type;size:16;index" json:"reservation_type"`
	CheckInDate  time.Time  `gorm:"column:check_in_date;type:date;index" json:"check_in_date"`
	CheckOutDate *time.Time `gorm:"column:check_out_date;type:date" json:"check_out_date,omitempty"`
	NumGuests    int        `gorm:"column:num_guests" json:"num_guests"`
	TotalPrice   float64    `gorm:"column:total_price" json:"total_price"`
	Status       string     `gorm:"column:status;size:16;index" json:"status"`
	Notes        string     `gorm:"column:notes;type:text" json:"notes,omitempty"`

	WhatsAppConfirmationSent bool `gorm:"column:whatsapp_confirmation_sent;default:false" json:"whatsapp_confirmation_sent"`
	EmailConfirmationSent    bool `gorm:"column:email_confirmation_sent;default:false" json:"email_confirmation_sent"`

	Client Client            `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Rooms  []ReservationRoom `gorm:"foreignKey:ReservationID" json:"rooms"`
}

// IsActive reports whether the reservation still holds capacity or room
// inventory: cancelled and completed reservations release both.
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}
