package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", d.Format("2006-01-02"))

	_, err = ParseDate("10/06/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestStaysOverlap(t *testing.T) {
	cases := []struct {
		name                       string
		startA, endA, startB, endB string
		want                       bool
	}{
		{"identical ranges", "2025-07-01", "2025-07-05", "2025-07-01", "2025-07-05", true},
		{"contained range", "2025-07-02", "2025-07-03", "2025-07-01", "2025-07-05", true},
		{"partial overlap front", "2025-06-30", "2025-07-02", "2025-07-01", "2025-07-05", true},
		{"partial overlap back", "2025-07-04", "2025-07-07", "2025-07-01", "2025-07-05", true},
		{"checkout equals checkin is adjacency", "2025-07-05", "2025-07-08", "2025-07-01", "2025-07-05", false},
		{"checkin equals checkout is adjacency", "2025-06-28", "2025-07-01", "2025-07-01", "2025-07-05", false},
		{"disjoint before", "2025-06-01", "2025-06-05", "2025-07-01", "2025-07-05", false},
		{"disjoint after", "2025-08-01", "2025-08-05", "2025-07-01", "2025-07-05", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			startA, err := ParseDate(tc.startA)
			require.NoError(t, err)
			endA, err := ParseDate(tc.endA)
			require.NoError(t, err)
			startB, err := ParseDate(tc.startB)
			require.NoError(t, err)
			endB, err := ParseDate(tc.endB)
			require.NoError(t, err)

			assert.Equal(t, tc.want, StaysOverlap(startA, endA, startB, endB))
			assert.Equal(t, tc.want, StaysOverlap(startB, endB, startA, endA), "overlap must be symmetric")
		})
	}
}

func TestBlockOverlapsStay(t *testing.T) {
	cases := []struct {
		name                                    string
		blockStart, blockEnd, checkIn, checkOut string
		want                                    bool
	}{
		// A block is inclusive on both ends: a stay starting on the block's
		// last day still collides even though checkout is exclusive.
		{"stay starts on inclusive block end", "2025-07-01", "2025-07-05", "2025-07-05", "2025-07-06", true},
		{"stay starts day after block end", "2025-07-01", "2025-07-05", "2025-07-06", "2025-07-07", false},
		{"stay ends on block start", "2025-07-01", "2025-07-05", "2025-06-28", "2025-07-01", false},
		{"stay ends day after block start", "2025-07-01", "2025-07-05", "2025-06-28", "2025-07-02", true},
		{"stay spans whole block", "2025-07-01", "2025-07-05", "2025-06-30", "2025-07-07", true},
		{"single-day block inside stay", "2025-07-03", "2025-07-03", "2025-07-01", "2025-07-05", true},
		{"disjoint", "2025-07-01", "2025-07-05", "2025-08-01", "2025-08-03", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blockStart, err := ParseDate(tc.blockStart)
			require.NoError(t, err)
			blockEnd, err := ParseDate(tc.blockEnd)
			require.NoError(t, err)
			checkIn, err := ParseDate(tc.checkIn)
			require.NoError(t, err)
			checkOut, err := ParseDate(tc.checkOut)
			require.NoError(t, err)

			assert.Equal(t, tc.want, BlockOverlapsStay(blockStart, blockEnd, checkIn, checkOut))
		})
	}
}

func TestBlockCoversDay(t *testing.T) {
	start, err := ParseDate("2025-07-01")
	require.NoError(t, err)
	end, err := ParseDate("2025-07-05")
	require.NoError(t, err)

	first, _ := ParseDate("2025-07-01")
	last, _ := ParseDate("2025-07-05")
	before, _ := ParseDate("2025-06-30")
	after, _ := ParseDate("2025-07-06")

	assert.True(t, BlockCoversDay(start, end, first))
	assert.True(t, BlockCoversDay(start, end, last))
	assert.False(t, BlockCoversDay(start, end, before))
	assert.False(t, BlockCoversDay(start, end, after))
}

func TestNights(t *testing.T) {
	checkIn, err := ParseDate("2025-07-01")
	require.NoError(t, err)

	oneNight, _ := ParseDate("2025-07-02")
	fourNights, _ := ParseDate("2025-07-05")

	assert.Equal(t, 1, Nights(checkIn, oneNight))
	assert.Equal(t, 4, Nights(checkIn, fourNights))
	assert.Equal(t, 0, Nights(checkIn, checkIn))
}
