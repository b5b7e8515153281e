package services

import (
	"fmt"
	"time"

	"aquavalle-backend/models"

	"gorm.io/gorm"
)

// StatsService aggregates the admin dashboard figures.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type DashboardStats struct {
	TotalReservations     int     `json:"total_reservations"`
	PendingReservations   int     `json:"pending_reservations"`
	ConfirmedReservations int     `json:"confirmed_reservations"`
	CancelledReservations int     `json:"cancelled_reservations"`
	TotalRevenue          float64 `json:"total_revenue"`
	FullDayBookings       int     `json:"fullday_bookings"`
	LodgingBookings       int     `json:"lodging_bookings"`
	UpcomingCheckIns      int     `json:"upcoming_checkins"`
	MonthLabel            string  `json:"month_label,omitempty"`
}

// computeStats folds a reservation set into dashboard figures. Revenue only
// counts confirmed and completed reservations; upcoming check-ins cover the
// next seven days from today.
func computeStats(reservations []models.Reservation, today time.Time) DashboardStats {
	stats := DashboardStats{}
	today = DateOnly(today)
	weekLater := today.AddDate(0, 0, 7)

	for _, r := range reservations {
		stats.TotalReservations++
		switch r.Status {
		case models.StatusPending:
			stats.PendingReservations++
		case models.StatusConfirmed:
			stats.ConfirmedReservations++
		case models.StatusCancelled:
			stats.CancelledReservations++
		}
		if r.Status == models.StatusConfirmed || r.Status == models.StatusCompleted {
			stats.TotalRevenue += r.TotalPrice
		}
		switch r.Type {
		case models.TypeFullDay:
			stats.FullDayBookings++
		case models.TypeLodging:
			stats.LodgingBookings++
		}
		checkIn := DateOnly(r.CheckInDate)
		if r.IsActive() && !checkIn.Before(today) && !checkIn.After(weekLater) {
			stats.UpcomingCheckIns++
		}
	}
	return stats
}

// Dashboard returns aggregate stats, optionally restricted to one
// check-in month.
func (s *StatsService) Dashboard(month, year int) (*DashboardStats, error) {
	query := s.DB.Model(&models.Reservation{})
	if month >= 1 && month <= 12 && year > 0 {
		query = query.Where("MONTH(check_in_date) = ? AND YEAR(check_in_date) = ?", month, year)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return nil, ErrStore(err)
	}

	stats := computeStats(reservations, time.Now().UTC())
	if month >= 1 && month <= 12 && year > 0 {
		stats.MonthLabel = fmt.Sprintf("%s %d", time.Month(month), year)
	}
	return &stats, nil
}
