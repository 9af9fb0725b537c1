package services

import (
	"fmt"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DashboardSummary is the aggregate view rendered on the main screen.
type DashboardSummary struct {
	ReservationsByStatus map[models.ReservationStatus]int64 `json:"reservations_by_status"`
	RoomsByStatus        map[models.RoomStatus]int64        `json:"rooms_by_status"`
	ArrivalsToday        int64                              `json:"arrivals_today"`
	DeparturesToday      int64                              `json:"departures_today"`
	PendingConsumptions  int64                              `json:"pending_consumptions"`
	TotalRevenue         decimal.Decimal                    `json:"total_revenue"`
}

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type statusCount struct {
	Status string
	Count  int64
}

// Summary aggregates reservation, room, consumption and payment state
// into one response.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	summary := &DashboardSummary{
		ReservationsByStatus: map[models.ReservationStatus]int64{},
		RoomsByStatus:        map[models.RoomStatus]int64{},
		TotalRevenue:         decimal.Zero,
	}

	var reservationCounts []statusCount
	if err := s.DB.Model(&models.Reservation{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&reservationCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	for _, c := range reservationCounts {
		summary.ReservationsByStatus[models.ReservationStatus(c.Status)] = c.Count
	}

	var roomCounts []statusCount
	if err := s.DB.Model(&models.Room{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&roomCounts).Error; err != nil {
		return nil, fmt.Errorf("failed to count rooms: %w", err)
	}
	for _, c := range roomCounts {
		summary.RoomsByStatus[models.RoomStatus(c.Status)] = c.Count
	}

	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND check_in_date >= ? AND check_in_date < ?",
			models.ReservationConfirmed, dayStart, dayEnd).
		Count(&summary.ArrivalsToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count arrivals: %w", err)
	}

	if err := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND check_out_date >= ? AND check_out_date < ?",
			models.ReservationCheckedIn, dayStart, dayEnd).
		Count(&summary.DeparturesToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count departures: %w", err)
	}

	if err := s.DB.Model(&models.Consumption{}).
		Where("status = ?", models.ConsumptionPending).
		Count(&summary.PendingConsumptions).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending consumptions: %w", err)
	}

	var payments []models.Payment
	if err := s.DB.Where("status = ?", models.PaymentCompleted).Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	for _, p := range payments {
		summary.TotalRevenue = summary.TotalRevenue.Add(p.Amount)
	}

	return summary, nil
}
