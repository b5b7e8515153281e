package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservationIsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCompleted}).IsActive())
}

func TestBlockAppliesToRoom(t *testing.T) {
	roomID := uint(2)

	agnostic := &AvailabilityBlock{}
	assert.True(t, agnostic.AppliesToRoom(1))
	assert.True(t, agnostic.AppliesToRoom(2))

	specific := &AvailabilityBlock{RoomID: &roomID}
	assert.False(t, specific.AppliesToRoom(1))
	assert.True(t, specific.AppliesToRoom(2))
}
