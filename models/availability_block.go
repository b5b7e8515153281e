package models

import "time"

// Block types for availability blocks.
const (
	BlockMaintenance  = "maintenance"
	BlockPrivateEvent = "private_event"
	BlockOther        = "other"
)

// AvailabilityBlock removes dates (and optionally a specific room) from
// availability regardless of booking state. The date range is inclusive on
// both ends. A nil RoomID applies to every room and also closes the
// full-day service for the range.
type AvailabilityBlock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RoomID        *uint     `gorm:"column:room_id;index" json:"room_id,omitempty"`
	StartDate     time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate       time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	BlockType     string    `gorm:"column:block_type;size:32" json:"block_type"`
	Reason        string    `gorm:"column:reason;type:text" json:"reason,omitempty"`
	BlocksFullDay bool      `gorm:"column:blocks_fullday;default:false" json:"blocks_fullday"`

	Room *Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// AppliesToRoom reports whether the block constrains the given room.
// Room-agnostic blocks apply to all rooms.
func (b *AvailabilityBlock) AppliesToRoom(roomID uint) bool {
	return b.RoomID == nil || *b.RoomID == roomID
}
