package services

import (
	"errors"
	"time"

	"aquavalle-backend/config"
	"aquavalle-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AvailabilityService answers whether a date can take another full-day
// booking and whether a room is free across a date range. Administrative
// blocks are consulted before any booking arithmetic.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// stayWindow is the slice of reservation state the overlap checks need.
type stayWindow struct {
	CheckInDate  time.Time
	CheckOutDate *time.Time
	Status       string
}

// bounds returns the half-open [check-in, check-out) range of a stay.
// A missing check-out is treated as a single-night stay.
func (w stayWindow) bounds() (time.Time, time.Time) {
	start := DateOnly(w.CheckInDate)
	if w.CheckOutDate == nil {
		return start, start.AddDate(0, 0, 1)
	}
	return start, DateOnly(*w.CheckOutDate)
}

// fullDayClosed reports whether any block shuts the full-day service on the
// given day: blocks flagged blocks_fullday and room-agnostic blocks both
// close it, regardless of remaining numeric capacity.
func fullDayClosed(blocks []models.AvailabilityBlock, day time.Time) bool {
	for _, b := range blocks {
		if !b.BlocksFullDay && b.RoomID != nil {
			continue
		}
		if BlockCoversDay(DateOnly(b.StartDate), DateOnly(b.EndDate), day) {
			return true
		}
	}
	return false
}

// roomBlocked reports whether any block covering this room overlaps the
// requested stay under the inclusive block rule.
func roomBlocked(blocks []models.AvailabilityBlock, roomID uint, checkIn, checkOut time.Time) bool {
	for _, b := range blocks {
		if !b.AppliesToRoom(roomID) {
			continue
		}
		if BlockOverlapsStay(DateOnly(b.StartDate), DateOnly(b.EndDate), checkIn, checkOut) {
			return true
		}
	}
	return false
}

// staysConflict reports whether any pending or confirmed stay overlaps the
// requested half-open range.
func staysConflict(stays []stayWindow, checkIn, checkOut time.Time) bool {
	for _, w := range stays {
		if w.Status != models.StatusPending && w.Status != models.StatusConfirmed {
			continue
		}
		start, end := w.bounds()
		if StaysOverlap(checkIn, checkOut, start, end) {
			return true
		}
	}
	return false
}

func (s *AvailabilityService) loadBlocks(db *gorm.DB) ([]models.AvailabilityBlock, error) {
	var blocks []models.AvailabilityBlock
	if err := db.Find(&blocks).Error; err != nil {
		return nil, ErrStore(err)
	}
	return blocks, nil
}

func (s *AvailabilityService) loadRoomStays(db *gorm.DB, roomID uint) ([]stayWindow, error) {
	var stays []stayWindow
	err := db.
		Table("reservation_rooms").
		Select("reservations.check_in_date, reservations.check_out_date, reservations.status").
		Joins("JOIN reservations ON reservations.id = reservation_rooms.reservation_id").
		Where("reservation_rooms.room_id = ? AND reservation_rooms.deleted_at IS NULL", roomID).
		Where("reservations.deleted_at IS NULL").
		Scan(&stays).Error
	if err != nil {
		return nil, ErrStore(err)
	}
	return stays, nil
}

// fullDayGuests sums guests over pending and confirmed full-day bookings on
// a date.
func (s *AvailabilityService) fullDayGuests(db *gorm.DB, day time.Time) (int, error) {
	var total int64
	err := db.
		Model(&models.Reservation{}).
		Select("COALESCE(SUM(num_guests), 0)").
		Where("reservation_type = ? AND check_in_date = ? AND status IN ?",
			models.TypeFullDay, day, []string{models.StatusPending, models.StatusConfirmed}).
		Scan(&total).Error
	if err != nil {
		return 0, ErrStore(err)
	}
	return int(total), nil
}

// fullDayRemaining applies the capacity rule: a request fits iff the
// existing guest sum plus the requested guests stays within the daily
// maximum. Returns the capacity left after the request when it fits, or
// the capacity left before it when it does not.
func fullDayRemaining(used, requested int) (int, bool) {
	remaining := config.MaxFullDayCapacity - used
	if remaining < 0 {
		remaining = 0
	}
	if requested > remaining {
		return remaining, false
	}
	return remaining - requested, true
}

// CheckFullDay validates a full-day request for a single date and returns
// the capacity remaining after the requested guests. Blocks are evaluated
// first; a blocked date is unavailable even with capacity to spare.
func (s *AvailabilityService) CheckFullDay(db *gorm.DB, day time.Time, numGuests int) (int, error) {
	day = DateOnly(day)

	blocks, err := s.loadBlocks(db)
	if err != nil {
		return 0, err
	}
	if fullDayClosed(blocks, day) {
		return 0, ErrDateBlocked(day.Format(dateLayout))
	}

	used, err := s.fullDayGuests(db, day)
	if err != nil {
		return 0, err
	}
	remaining, ok := fullDayRemaining(used, numGuests)
	if !ok {
		return 0, ErrCapacityExceeded(day.Format(dateLayout), remaining)
	}
	return remaining, nil
}

// CheckRoom validates that a room is free across [checkIn, checkOut),
// considering administrative blocks and pending/confirmed stays.
func (s *AvailabilityService) CheckRoom(db *gorm.DB, room *models.Room, checkIn, checkOut time.Time) error {
	checkIn = DateOnly(checkIn)
	checkOut = DateOnly(checkOut)

	blocks, err := s.loadBlocks(db)
	if err != nil {
		return err
	}
	if roomBlocked(blocks, room.ID, checkIn, checkOut) {
		return ErrRoomUnavailable(room.ID, room.Name)
	}

	stays, err := s.loadRoomStays(db, room.ID)
	if err != nil {
		return err
	}
	if staysConflict(stays, checkIn, checkOut) {
		return ErrRoomUnavailable(room.ID, room.Name)
	}
	return nil
}

// lockForFullDay takes FOR UPDATE locks on the full-day reservation rows of
// a date so two concurrent bookings serialize instead of both passing the
// capacity check. Must run inside a transaction.
func (s *AvailabilityService) lockForFullDay(tx *gorm.DB, day time.Time) error {
	var ids []uint
	err := tx.
		Model(&models.Reservation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reservation_type = ? AND check_in_date = ?", models.TypeFullDay, DateOnly(day)).
		Pluck("id", &ids).Error
	if err != nil {
		return ErrStore(err)
	}
	return nil
}

// lockForRoom takes FOR UPDATE locks on a room's link rows for the same
// reason. Must run inside a transaction.
func (s *AvailabilityService) lockForRoom(tx *gorm.DB, roomID uint) error {
	var ids []uint
	err := tx.
		Model(&models.ReservationRoom{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_id = ?", roomID).
		Pluck("id", &ids).Error
	if err != nil {
		return ErrStore(err)
	}
	return nil
}

// DayAvailability is one calendar day of an availability report.
type DayAvailability struct {
	Date              string `json:"date"`
	Available         bool   `json:"available"`
	RemainingCapacity *int   `json:"remaining_capacity,omitempty"`
}

// FullDayCalendar reports, for each day in [start, end], whether the
// full-day service can take numGuests more guests and how much capacity
// remains before them.
func (s *AvailabilityService) FullDayCalendar(start, end time.Time, numGuests int) ([]DayAvailability, error) {
	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return nil, ErrValidation("end_date must not be before start_date")
	}

	blocks, err := s.loadBlocks(s.DB)
	if err != nil {
		return nil, err
	}

	days := make([]DayAvailability, 0, Nights(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if fullDayClosed(blocks, day) {
			zero := 0
			days = append(days, DayAvailability{
				Date:              day.Format(dateLayout),
				Available:         false,
				RemainingCapacity: &zero,
			})
			continue
		}

		used, err := s.fullDayGuests(s.DB, day)
		if err != nil {
			return nil, err
		}
		remaining := config.MaxFullDayCapacity - used
		if remaining < 0 {
			remaining = 0
		}
		requested := numGuests
		if requested <= 0 {
			requested = 1
		}
		days = append(days, DayAvailability{
			Date:              day.Format(dateLayout),
			Available:         requested <= remaining,
			RemainingCapacity: &remaining,
		})
	}
	return days, nil
}

// RoomCalendar reports per-day availability for one room across [start, end].
func (s *AvailabilityService) RoomCalendar(roomID uint, start, end time.Time) (*models.Room, []DayAvailability, error) {
	var room models.Room
	if err := s.DB.Where("is_active = ?", true).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound("room")
		}
		return nil, nil, ErrStore(err)
	}

	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return nil, nil, ErrValidation("end_date must not be before start_date")
	}

	blocks, err := s.loadBlocks(s.DB)
	if err != nil {
		return nil, nil, err
	}
	stays, err := s.loadRoomStays(s.DB, room.ID)
	if err != nil {
		return nil, nil, err
	}

	days := make([]DayAvailability, 0, Nights(start, end)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		free := !roomBlocked(blocks, room.ID, day, next) && !staysConflict(stays, day, next)
		days = append(days, DayAvailability{
			Date:      day.Format(dateLayout),
			Available: free,
		})
	}
	return &room, days, nil
}

// RoomAvailability lists the free dates of one room over a range.
type RoomAvailability struct {
	RoomID         uint     `json:"room_id"`
	RoomName       string   `json:"room_name"`
	AvailableDates []string `json:"available_dates"`
}

// RoomsCalendar reports, for every active room, the dates in [start, end]
// on which it is free.
func (s *AvailabilityService) RoomsCalendar(start, end time.Time) ([]RoomAvailability, error) {
	var rooms []models.Room
	if err := s.DB.Where("is_active = ?", true).Order("id").Find(&rooms).Error; err != nil {
		return nil, ErrStore(err)
	}

	start = DateOnly(start)
	end = DateOnly(end)
	if end.Before(start) {
		return nil, ErrValidation("end_date must not be before start_date")
	}

	blocks, err := s.loadBlocks(s.DB)
	if err != nil {
		return nil, err
	}

	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		stays, err := s.loadRoomStays(s.DB, room.ID)
		if err != nil {
			return nil, err
		}

		entry := RoomAvailability{RoomID: room.ID, RoomName: room.Name, AvailableDates: []string{}}
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			next := day.AddDate(0, 0, 1)
			if !roomBlocked(blocks, room.ID, day, next) && !staysConflict(stays, day, next) {
				entry.AvailableDates = append(entry.AvailableDates, day.Format(dateLayout))
			}
		}
		result = append(result, entry)
	}
	return result, nil
}
