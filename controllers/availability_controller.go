package controllers

import (
	"net/http"
	"strconv"

	"aquavalle-backend/services"
	"aquavalle-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Availability *services.AvailabilityService
}

func NewAvailabilityController(availability *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{Availability: availability}
}

// GetFullDayAvailability reports per-day full-day availability plus
// remaining capacity over a date range.
func (ac *AvailabilityController) GetFullDayAvailability(c *gin.Context) {
	startDate, err := services.ParseDate(c.Query("start_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := services.ParseDate(c.Query("end_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	numGuests, _ := strconv.Atoi(c.DefaultQuery("num_guests", "1"))

	days, err := ac.Availability.FullDayCalendar(startDate, endDate, numGuests)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"start_date": c.Query("start_date"),
		"end_date":   c.Query("end_date"),
		"num_guests": numGuests,
		"days":       days,
	})
}

// GetRoomAvailability reports per-day availability for one room.
func (ac *AvailabilityController) GetRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room id")
		return
	}
	startDate, err := services.ParseDate(c.Query("start_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := services.ParseDate(c.Query("end_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	room, days, err := ac.Availability.RoomCalendar(uint(roomID), startDate, endDate)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"room_id":    room.ID,
		"room_name":  room.Name,
		"start_date": c.Query("start_date"),
		"end_date":   c.Query("end_date"),
		"days":       days,
	})
}

// GetAllRoomsAvailability lists, for every active room, the free dates in
// the range.
func (ac *AvailabilityController) GetAllRoomsAvailability(c *gin.Context) {
	startDate, err := services.ParseDate(c.Query("start_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := services.ParseDate(c.Query("end_date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	rooms, err := ac.Availability.RoomsCalendar(startDate, endDate)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
