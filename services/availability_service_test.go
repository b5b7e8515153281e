package services

import (
	"testing"
	"time"

	"aquavalle-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseDate(s)
	require.NoError(t, err)
	return parsed
}

func dp(t *testing.T, s string) *time.Time {
	t.Helper()
	parsed := d(t, s)
	return &parsed
}

func uintPtr(v uint) *uint { return &v }

func TestFullDayClosed(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		// Room-specific block without the fullday flag: must not close the
		// full-day service.
		{RoomID: uintPtr(1), StartDate: d(t, "2025-07-01"), EndDate: d(t, "2025-07-05")},
		// Room-specific block flagged to also suppress full-day bookings.
		{RoomID: uintPtr(2), StartDate: d(t, "2025-08-01"), EndDate: d(t, "2025-08-02"), BlocksFullDay: true},
		// Room-agnostic block implicitly closes the full-day service.
		{RoomID: nil, StartDate: d(t, "2025-09-10"), EndDate: d(t, "2025-09-10")},
	}

	assert.False(t, fullDayClosed(blocks, d(t, "2025-07-03")))
	assert.True(t, fullDayClosed(blocks, d(t, "2025-08-01")))
	assert.True(t, fullDayClosed(blocks, d(t, "2025-08-02")))
	assert.False(t, fullDayClosed(blocks, d(t, "2025-08-03")))
	assert.True(t, fullDayClosed(blocks, d(t, "2025-09-10")))
	assert.False(t, fullDayClosed(blocks, d(t, "2025-09-11")))
}

func TestRoomBlocked(t *testing.T) {
	blocks := []models.AvailabilityBlock{
		{RoomID: uintPtr(1), StartDate: d(t, "2025-07-01"), EndDate: d(t, "2025-07-05"), BlockType: models.BlockMaintenance},
		{RoomID: nil, StartDate: d(t, "2025-12-24"), EndDate: d(t, "2025-12-26"), BlockType: models.BlockPrivateEvent},
	}

	// Inclusive boundary: block ends 07-05, a stay 07-05..07-06 collides.
	assert.True(t, roomBlocked(blocks, 1, d(t, "2025-07-05"), d(t, "2025-07-06")))
	assert.False(t, roomBlocked(blocks, 1, d(t, "2025-07-06"), d(t, "2025-07-07")))

	// Other rooms are unaffected by a room-specific block.
	assert.False(t, roomBlocked(blocks, 2, d(t, "2025-07-02"), d(t, "2025-07-04")))

	// Room-agnostic blocks hit every room.
	assert.True(t, roomBlocked(blocks, 1, d(t, "2025-12-25"), d(t, "2025-12-27")))
	assert.True(t, roomBlocked(blocks, 2, d(t, "2025-12-25"), d(t, "2025-12-27")))
}

func TestStaysConflict(t *testing.T) {
	stays := []stayWindow{
		{CheckInDate: d(t, "2025-07-10"), CheckOutDate: dp(t, "2025-07-12"), Status: models.StatusConfirmed},
		{CheckInDate: d(t, "2025-07-20"), CheckOutDate: dp(t, "2025-07-22"), Status: models.StatusCancelled},
		// Defensive: lodging stay with no checkout counts as one night.
		{CheckInDate: d(t, "2025-07-30"), CheckOutDate: nil, Status: models.StatusPending},
	}

	assert.True(t, staysConflict(stays, d(t, "2025-07-11"), d(t, "2025-07-13")))

	// Checkout day adjacency is not a conflict.
	assert.False(t, staysConflict(stays, d(t, "2025-07-12"), d(t, "2025-07-14")))
	assert.False(t, staysConflict(stays, d(t, "2025-07-08"), d(t, "2025-07-10")))

	// Cancelled stays hold no inventory.
	assert.False(t, staysConflict(stays, d(t, "2025-07-20"), d(t, "2025-07-22")))

	// Nil checkout: occupied on the check-in night only.
	assert.True(t, staysConflict(stays, d(t, "2025-07-30"), d(t, "2025-07-31")))
	assert.False(t, staysConflict(stays, d(t, "2025-07-31"), d(t, "2025-08-01")))
}

func TestFullDayRemaining(t *testing.T) {
	// 15 guests on an empty day leave 5 spots.
	after, ok := fullDayRemaining(0, 15)
	assert.True(t, ok)
	assert.Equal(t, 5, after)

	// 5 more fill the day exactly.
	after, ok = fullDayRemaining(15, 5)
	assert.True(t, ok)
	assert.Equal(t, 0, after)

	// One more guest is rejected and the remaining capacity reported is 0.
	remaining, ok := fullDayRemaining(20, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)

	remaining, ok = fullDayRemaining(18, 5)
	assert.False(t, ok)
	assert.Equal(t, 2, remaining)

	// Oversold ledgers never report negative capacity.
	remaining, ok = fullDayRemaining(25, 1)
	assert.False(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestStayWindowBounds(t *testing.T) {
	withCheckout := stayWindow{CheckInDate: d(t, "2025-07-01"), CheckOutDate: dp(t, "2025-07-04")}
	start, end := withCheckout.bounds()
	assert.Equal(t, d(t, "2025-07-01"), start)
	assert.Equal(t, d(t, "2025-07-04"), end)

	withoutCheckout := stayWindow{CheckInDate: d(t, "2025-07-01")}
	start, end = withoutCheckout.bounds()
	assert.Equal(t, d(t, "2025-07-01"), start)
	assert.Equal(t, d(t, "2025-07-02"), end)
}
