package controllers

import (
	"net/http"
	"strconv"
	"time"

	"aquavalle-backend/services"
	"aquavalle-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Admins       *services.AdminService
	Reservations *services.ReservationService
	Blocks       *services.BlockService
	Stats        *services.StatsService
}

func NewAdminController(
	admins *services.AdminService,
	reservations *services.ReservationService,
	blocks *services.BlockService,
	stats *services.StatsService,
) *AdminController {
	return &AdminController{
		Admins:       admins,
		Reservations: reservations,
		Blocks:       blocks,
		Stats:        stats,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	token, admin, err := ac.Admins.Login(req.Email, req.Password)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"admin_email":  admin.Email,
	})
}

func (ac *AdminController) Me(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"admin_id": c.GetUint("admin_id"),
		"email":    c.GetString("admin_email"),
	})
}

func (ac *AdminController) GetStats(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	stats, err := ac.Stats.Dashboard(month, year)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

func (ac *AdminController) GetReservations(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	reservations, err := ac.Reservations.List(services.ListOptions{
		Skip:   skip,
		Limit:  limit,
		Status: c.Query("status"),
		Type:   c.Query("reservation_type"),
		Month:  month,
		Year:   year,
	})
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

type UpdateReservationRequest struct {
	Status       *string `json:"status"`
	CheckInDate  *string `json:"check_in_date"`
	CheckOutDate *string `json:"check_out_date"`
	NumGuests    *int    `json:"num_guests"`
	Notes        *string `json:"notes"`
	ClientName   *string `json:"client_name"`
	ClientPhone  *string `json:"client_phone"`
}

func (ac *AdminController) UpdateReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	input := services.UpdateReservationInput{
		Status:      req.Status,
		NumGuests:   req.NumGuests,
		Notes:       req.Notes,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	}
	if req.CheckInDate != nil {
		parsed, err := services.ParseDate(*req.CheckInDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "check_in_date must be YYYY-MM-DD")
			return
		}
		input.CheckInDate = &parsed
	}
	if req.CheckOutDate != nil {
		parsed, err := services.ParseDate(*req.CheckOutDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "check_out_date must be YYYY-MM-DD")
			return
		}
		input.CheckOutDate = &parsed
	}

	reservation, err := ac.Reservations.Update(uint(id), input)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(reservation))
}

func (ac *AdminController) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid reservation id")
		return
	}

	reservation, err := ac.Reservations.Cancel(uint(id))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toReservationResponse(reservation))
}

type CreateBlockRequest struct {
	RoomID        *uint  `json:"room_id"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	BlockType     string `json:"block_type" binding:"required"`
	Reason        string `json:"reason"`
	BlocksFullDay bool   `json:"blocks_fullday"`
}

type BlockResponse struct {
	ID            uint      `json:"id"`
	RoomID        *uint     `json:"room_id,omitempty"`
	RoomName      string    `json:"room_name"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	BlockType     string    `json:"block_type"`
	Reason        string    `json:"reason,omitempty"`
	BlocksFullDay bool      `json:"blocks_fullday"`
	CreatedAt     time.Time `json:"created_at"`
}

func (ac *AdminController) GetBlocks(c *gin.Context) {
	blocks, err := ac.Blocks.List()
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	out := make([]BlockResponse, 0, len(blocks))
	for _, block := range blocks {
		roomName := "All rooms"
		if block.Room != nil {
			roomName = block.Room.Name
		}
		out = append(out, BlockResponse{
			ID:            block.ID,
			RoomID:        block.RoomID,
			RoomName:      roomName,
			StartDate:     block.StartDate.Format("2006-01-02"),
			EndDate:       block.EndDate.Format("2006-01-02"),
			BlockType:     block.BlockType,
			Reason:        block.Reason,
			BlocksFullDay: block.BlocksFullDay,
			CreatedAt:     block.CreatedAt,
		})
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

func (ac *AdminController) CreateBlock(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	startDate, err := services.ParseDate(req.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	endDate, err := services.ParseDate(req.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}

	block, err := ac.Blocks.Create(services.CreateBlockInput{
		RoomID:        req.RoomID,
		StartDate:     startDate,
		EndDate:       endDate,
		BlockType:     req.BlockType,
		Reason:        req.Reason,
		BlocksFullDay: req.BlocksFullDay,
	})
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, block)
}

func (ac *AdminController) DeleteBlock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid block id")
		return
	}

	if err := ac.Blocks.Delete(uint(id)); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
