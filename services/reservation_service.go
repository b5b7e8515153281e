package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"aquavalle-backend/config"
	"aquavalle-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationService is the booking orchestrator: it validates availability,
// resolves the client, computes the price and persists the reservation with
// its room links as one transaction.
type ReservationService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewReservationService(db *gorm.DB, availability *AvailabilityService) *ReservationService {
	return &ReservationService{DB: db, Availability: availability}
}

// CreateReservationInput is the typed request the orchestrator consumes.
type CreateReservationInput struct {
	Client       ClientInput
	Type         string
	CheckInDate  time.Time
	CheckOutDate *time.Time
	NumGuests    int
	RoomIDs      []uint
	Notes        string
}

// Validate enforces the cross-field rules before any availability logic
// runs. A lodging request with check_out <= check_in never reaches the
// checker.
func (in *CreateReservationInput) Validate() error {
	if in.Client.IDDocument == "" {
		return ErrValidation("client document is required")
	}
	if in.Client.FullName == "" {
		return ErrValidation("client name is required")
	}
	if in.Client.Phone == "" {
		return ErrValidation("client phone is required")
	}
	if in.NumGuests <= 0 {
		return ErrValidation("num_guests must be positive")
	}

	switch in.Type {
	case models.TypeFullDay:
		if in.CheckOutDate != nil {
			return ErrValidation("check_out_date must be empty for full day bookings")
		}
		if in.NumGuests > config.MaxFullDayCapacity {
			return ErrValidation(fmt.Sprintf("full day capacity is maximum %d people", config.MaxFullDayCapacity))
		}
	case models.TypeLodging:
		if in.CheckOutDate == nil {
			return ErrValidation("check_out_date is required for lodging")
		}
		if !in.CheckOutDate.After(in.CheckInDate) {
			return ErrValidation("check_out_date must be after check_in_date")
		}
		if len(in.RoomIDs) == 0 {
			return ErrValidation("at least one room is required for lodging")
		}
	default:
		return ErrValidation("reservation_type must be fullday or lodging")
	}
	return nil
}

// LodgingPrice is the documented pricing formula for stays: the sum of the
// nightly prices of the requested rooms times the number of nights.
func LodgingPrice(rooms []models.Room, nights int) float64 {
	var perNight float64
	for _, room := range rooms {
		perNight += room.PricePerNight
	}
	return perNight * float64(nights)
}

// FullDayPrice is the documented pricing formula for full-day bookings.
func FullDayPrice(numGuests int) float64 {
	return float64(numGuests) * config.FullDayPricePerGuest
}

// Create runs the whole booking workflow in one transaction: availability
// gate, client resolution, price computation and persistence. Any failure
// before commit rolls everything back; client resolution is idempotent by
// document, so a retried request cannot corrupt identity state.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	checkIn := DateOnly(in.CheckInDate)
	var checkOut *time.Time
	if in.CheckOutDate != nil {
		d := DateOnly(*in.CheckOutDate)
		checkOut = &d
	}

	var reservationID uint
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var rooms []models.Room
		if in.Type == models.TypeLodging {
			if err := tx.Where("id IN ? AND is_active = ?", in.RoomIDs, true).Find(&rooms).Error; err != nil {
				return ErrStore(err)
			}
			if len(rooms) != len(in.RoomIDs) {
				return ErrValidation("one or more requested rooms do not exist")
			}
		}

		// Availability gate, with FOR UPDATE locks on the contended rows so
		// concurrent requests cannot both pass the check and oversell.
		if in.Type == models.TypeFullDay {
			if err := s.Availability.lockForFullDay(tx, checkIn); err != nil {
				return err
			}
			if _, err := s.Availability.CheckFullDay(tx, checkIn, in.NumGuests); err != nil {
				return err
			}
		} else {
			for _, room := range rooms {
				if err := s.Availability.lockForRoom(tx, room.ID); err != nil {
					return err
				}
				if err := s.Availability.CheckRoom(tx, &room, checkIn, *checkOut); err != nil {
					return err
				}
			}
		}

		client, err := resolveClient(tx, in.Client)
		if err != nil {
			return err
		}

		var totalPrice float64
		if in.Type == models.TypeFullDay {
			totalPrice = FullDayPrice(in.NumGuests)
		} else {
			totalPrice = LodgingPrice(rooms, Nights(checkIn, *checkOut))
		}

		reservation := models.Reservation{
			ReferenceCode: uuid.NewString(),
			ClientID:      client.ID,
			Type:          in.Type,
			CheckInDate:   checkIn,
			CheckOutDate:  checkOut,
			NumGuests:     in.NumGuests,
			TotalPrice:    totalPrice,
			Status:        models.StatusPending,
			Notes:         in.Notes,
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return ErrStore(err)
		}
		reservationID = reservation.ID

		for _, room := range rooms {
			link := models.ReservationRoom{
				ReservationID: reservation.ID,
				RoomID:        room.ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to link room %d: %w", room.ID, ErrStore(err))
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("reservation %d created (%s, check-in %s)", reservationID, in.Type, checkIn.Format(dateLayout))
	return s.GetByID(reservationID)
}

// GetByID returns the reservation hydrated with its client and room names.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.
		Preload("Client").
		Preload("Rooms").
		Preload("Rooms.Room").
		First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound("reservation")
		}
		return nil, ErrStore(err)
	}
	if reservation.Rooms == nil {
		reservation.Rooms = []models.ReservationRoom{}
	}
	return &reservation, nil
}

// ListOptions filters and paginates reservation listings.
type ListOptions struct {
	Skip   int
	Limit  int
	Status string
	Type   string
	Month  int
	Year   int
}

// List returns reservations most-recent-created-first.
func (s *ReservationService) List(opts ListOptions) ([]models.Reservation, error) {
	if opts.Limit <= 0 {
		opts.Limit = 100
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}

	query := s.DB.
		Preload("Client").
		Preload("Rooms").
		Preload("Rooms.Room").
		Order("created_at DESC")

	if opts.Status != "" {
		query = query.Where("status = ?", opts.Status)
	}
	if opts.Type != "" {
		query = query.Where("reservation_type = ?", opts.Type)
	}
	if opts.Month >= 1 && opts.Month <= 12 && opts.Year > 0 {
		query = query.Where("MONTH(check_in_date) = ? AND YEAR(check_in_date) = ?", opts.Month, opts.Year)
	}

	var reservations []models.Reservation
	if err := query.Offset(opts.Skip).Limit(opts.Limit).Find(&reservations).Error; err != nil {
		return nil, ErrStore(err)
	}
	for i := range reservations {
		if reservations[i].Rooms == nil {
			reservations[i].Rooms = []models.ReservationRoom{}
		}
	}
	return reservations, nil
}

// CanTransition encodes the reservation state machine: pending to confirmed
// or cancelled, confirmed to cancelled or completed. Cancelled and
// completed are terminal.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case models.StatusPending:
		return to == models.StatusConfirmed || to == models.StatusCancelled
	case models.StatusConfirmed:
		return to == models.StatusCancelled || to == models.StatusCompleted
	default:
		return false
	}
}

// Cancel moves a pending or confirmed reservation to cancelled. Cancelling
// an already-cancelled reservation is a no-op.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if reservation.Status == models.StatusCancelled {
		return reservation, nil
	}
	if !CanTransition(reservation.Status, models.StatusCancelled) {
		return nil, ErrValidation(fmt.Sprintf("cannot cancel a %s reservation", reservation.Status))
	}

	if err := s.DB.Model(&models.Reservation{}).Where("id = ?", id).
		Update("status", models.StatusCancelled).Error; err != nil {
		return nil, ErrStore(err)
	}
	return s.GetByID(id)
}

// UpdateReservationInput is the admin partial-update payload. Nil fields
// are left untouched.
type UpdateReservationInput struct {
	Status       *string
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	NumGuests    *int
	Notes        *string
	ClientName   *string
	ClientPhone  *string
}

// Update applies an admin edit. Status changes must follow the state
// machine; changing the guest count is only allowed on full-day bookings
// and recomputes the total price.
func (s *ReservationService) Update(id uint, in UpdateReservationInput) (*models.Reservation, error) {
	reservation, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Status != nil {
		if !CanTransition(reservation.Status, *in.Status) {
			return nil, ErrValidation(fmt.Sprintf("invalid status transition %s -> %s", reservation.Status, *in.Status))
		}
		updates["status"] = *in.Status
	}
	if in.CheckInDate != nil {
		updates["check_in_date"] = DateOnly(*in.CheckInDate)
	}
	if in.CheckOutDate != nil {
		updates["check_out_date"] = DateOnly(*in.CheckOutDate)
	}
	if in.Notes != nil {
		updates["notes"] = *in.Notes
	}
	if in.NumGuests != nil {
		if reservation.Type != models.TypeFullDay {
			return nil, ErrValidation("num_guests can only be changed on full day bookings")
		}
		if *in.NumGuests <= 0 || *in.NumGuests > config.MaxFullDayCapacity {
			return nil, ErrValidation(fmt.Sprintf("num_guests must be between 1 and %d", config.MaxFullDayCapacity))
		}
		updates["num_guests"] = *in.NumGuests
		updates["total_price"] = FullDayPrice(*in.NumGuests)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&models.Reservation{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return ErrStore(err)
			}
		}

		clientUpdates := map[string]any{}
		if in.ClientName != nil {
			clientUpdates["full_name"] = *in.ClientName
		}
		if in.ClientPhone != nil {
			clientUpdates["phone"] = *in.ClientPhone
		}
		if len(clientUpdates) > 0 {
			if err := tx.Model(&models.Client{}).Where("id = ?", reservation.ClientID).Updates(clientUpdates).Error; err != nil {
				return ErrStore(err)
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(id)
}
