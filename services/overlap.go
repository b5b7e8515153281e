package services

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.Time.
// All engine date arithmetic works on these normalized values.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// DateOnly truncates a time to its UTC calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// StaysOverlap reports whether two half-open stay ranges [startA, endA) and
// [startB, endB) intersect. No overlap iff startA >= endB or endA <= startB,
// so a checkout on day D never blocks a check-in on day D.
func StaysOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// BlockOverlapsStay reports whether an inclusive block range
// [blockStart, blockEnd] intersects a requested stay [checkIn, checkOut).
// No overlap iff checkIn > blockEnd or checkOut <= blockStart.
func BlockOverlapsStay(blockStart, blockEnd, checkIn, checkOut time.Time) bool {
	return !checkIn.After(blockEnd) && checkOut.After(blockStart)
}

// BlockCoversDay reports whether an inclusive block range covers a single
// calendar day, i.e. the block overlaps the collapsed range [day, day+1).
func BlockCoversDay(blockStart, blockEnd, day time.Time) bool {
	return BlockOverlapsStay(blockStart, blockEnd, day, day.AddDate(0, 0, 1))
}

// Nights returns the whole-day length of a stay.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
