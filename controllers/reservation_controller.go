package controllers

import (
	"net/http"
	"strconv"
	"time"

	"aquavalle-backend/models"
	"aquavalle-backend/services"
	"aquavalle-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Reservations *services.ReservationService
	Availability *services.AvailabilityService
}

func NewReservationController(reservations *services.ReservationService, availability *services.AvailabilityService) *ReservationController {
	return &ReservationController{Reservations: reservations, Availability: availability}
}

type CreateReservationRequest struct {
	ClientName     string  `json:"client_name" binding:"required"`
	ClientDocument string  `json:"client_document" binding:"required"`
	ClientEmail    *string `json:"client_email" binding:"omitempty,email"`
	ClientPhone    string  `json:"client_phone" binding:"required"`

	ReservationType string  `json:"reservation_type" binding:"required"`
	CheckInDate     string  `json:"check_in_date" binding:"required"`
	CheckOutDate    *string `json:"check_out_date"`
	NumGuests       int     `json:"num_guests" binding:"required,gt=0"`
	RoomIDs         []uint  `json:"room_ids"`
	Notes           string  `json:"notes"`
}

// ReservationResponse is the hydrated wire shape: client fields and room
// display names resolved.
type ReservationResponse struct {
	ID            uint      `json:"id"`
	ReferenceCode string    `json:"reference_code"`
	Type          string    `json:"reservation_type"`
	CheckInDate   string    `json:"check_in_date"`
	CheckOutDate  *string   `json:"check_out_date,omitempty"`
	NumGuests     int       `json:"num_guests"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	ClientName    string    `json:"client_name"`
	ClientPhone   string    `json:"client_phone"`
	ClientEmail   *string   `json:"client_email,omitempty"`
	Rooms         []string  `json:"rooms"`
	CreatedAt     time.Time `json:"created_at"`
}

func toReservationResponse(r *models.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:            r.ID,
		ReferenceCode: r.ReferenceCode,
		Type:          r.Type,
		CheckInDate:   r.CheckInDate.Format("2006-01-02"),
		NumGuests:     r.NumGuests,
		TotalPrice:    r.TotalPrice,
		Status:        r.Status,
		Notes:         r.Notes,
		ClientName:    r.Client.FullName,
		ClientPhone:   r.Client.Phone,
		ClientEmail:   r.Client.Email,
		Rooms:         []string{},
		CreatedAt:     r.CreatedAt,
	}
	if r.CheckOutDate != nil {
		formatted := r.CheckOutDate.Format("2006-01-02")
		resp.CheckOutDate = &formatted
	}
	for _, link := range r.Rooms {
		if link.Room.ID != 0 {
			resp.Rooms = append(resp.Rooms, link.Room.Name)
		}
	}
	return resp
}

func (rc *ReservationController) buildCreateInput(req CreateReservationRequest) (services.CreateReservationInput, error) {
	checkIn, err := services.ParseDate(req.CheckInDate)
	if err != nil {
		return services.CreateReservationInput{}, services.ErrValidation("check_in_date must be YYYY-MM-DD")
	}

	var checkOut *time.Time
	if req.CheckOutDate != nil && *req.CheckOutDate != "" {
		parsed, err := services.ParseDate(*req.CheckOutDate)
		if err != nil {
			return services.CreateReservationInput{}, services.ErrValidation("check_out_date must be YYYY-MM-DD")
		}
		checkOut = &parsed
	}

	return services.CreateReservationInput{
		Client: services.ClientInput{
			FullName:   req.ClientName,
			IDDocument: req.ClientDocument,
			Phone:      req.ClientPhone,
			Email:      req.ClientEmail,
		},
		Type:         req.ReservationType,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumGuests:    req.NumGuests,
		RoomIDs:      req.RoomIDs,
		Notes:        req.Notes,
	}, nil
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	input, err := rc.buildCreateInput(req)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	reservation, err := rc.Reservations.Create(input)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toReservationResponse(reservation))
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	reservations, err := rc.Reservations.List(services.ListOptions{Skip: skip, Limit: limit})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := rc.Reservations.GetByID(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(reservation))
}

// CancelReservation lets the guest-facing surface cancel a booking; it is
// the only status change reachable without admin credentials.
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := rc.Reservations.Cancel(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(reservation))
}

type CheckAvailabilityRequest struct {
	Date            string `json:"date" binding:"required"`
	ReservationType string `json:"reservation_type" binding:"required"`
	NumGuests       int    `json:"num_guests"`
	RoomIDs         []uint `json:"room_ids"`
}

type CheckAvailabilityResponse struct {
	Available         bool   `json:"available"`
	Message           string `json:"message"`
	AvailableCapacity *int   `json:"available_capacity,omitempty"`
	AvailableRooms    []uint `json:"available_rooms,omitempty"`
}

// CheckAvailability is the public quick check used by the booking form:
// one date, either full-day capacity or a set of candidate rooms.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	date, err := services.ParseDate(req.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	if req.ReservationType == models.TypeFullDay {
		days, err := rc.Availability.FullDayCalendar(date, date, req.NumGuests)
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		day := days[0]
		resp := CheckAvailabilityResponse{
			Available:         day.Available,
			AvailableCapacity: day.RemainingCapacity,
		}
		if day.Available {
			resp.Message = "available"
		} else {
			resp.Message = "full day capacity exceeded or date blocked"
		}
		utils.JSONSuccess(c, http.StatusOK, resp)
		return
	}

	available := []uint{}
	for _, roomID := range req.RoomIDs {
		_, days, err := rc.Availability.RoomCalendar(roomID, date, date)
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}
		if len(days) > 0 && days[0].Available {
			available = append(available, roomID)
		}
	}
	resp := CheckAvailabilityResponse{
		Available:      len(available) > 0,
		AvailableRooms: available,
	}
	if resp.Available {
		resp.Message = "rooms available"
	} else {
		resp.Message = "no rooms available for the selected date"
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}
