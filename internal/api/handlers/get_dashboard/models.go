package get_dashboard

import (
	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	getDashboard "github.com/m04kA/villa-booking-service/internal/usecase/get_dashboard"
)

// DailyResponse занятость на дату
type DailyResponse struct {
	Date     string `json:"date"`
	Occupied int    `json:"occupied"`
	Rate     int    `json:"rate"`
}

// MonthlyResponse месячная статистика
type MonthlyResponse struct {
	Month      string  `json:"month"` // "2025-08"
	SoldNights int     `json:"soldNights"`
	Rate       float64 `json:"rate"`
	Revenue    int64   `json:"revenue"`
}

// DashboardResponse HTTP response model
type DashboardResponse struct {
	From         string                       `json:"from"`
	To           string                       `json:"to"`
	TotalRooms   int                          `json:"totalRooms"`
	Daily        []DailyResponse              `json:"daily"`
	Monthly      []MonthlyResponse            `json:"monthly"`
	Revenue      int64                        `json:"revenue"`
	Today        string                       `json:"today"`
	CheckIns     []models.ReservationResponse `json:"checkIns"`
	CheckOuts    []models.ReservationResponse `json:"checkOuts"`
	PendingCount int                          `json:"pendingCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDashboard.Response) *DashboardResponse {
	daily := make([]DailyResponse, 0, len(resp.Daily))
	for _, d := range resp.Daily {
		daily = append(daily, DailyResponse{
			Date:     d.Date.Format(domain.DateFormat),
			Occupied: d.Occupied,
			Rate:     d.Rate,
		})
	}

	monthly := make([]MonthlyResponse, 0, len(resp.Monthly))
	for _, m := range resp.Monthly {
		monthly = append(monthly, MonthlyResponse{
			Month:      m.Month.Format(domain.MonthFormat),
			SoldNights: m.SoldNights,
			Rate:       m.Rate,
			Revenue:    m.Revenue,
		})
	}

	return &DashboardResponse{
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		TotalRooms:   resp.TotalRooms,
		Daily:        daily,
		Monthly:      monthly,
		Revenue:      resp.Revenue,
		Today:        resp.Today.Format(domain.DateFormat),
		CheckIns:     models.FromDomainReservationList(resp.CheckIns),
		CheckOuts:    models.FromDomainReservationList(resp.CheckOuts),
		PendingCount: resp.PendingCount,
	}
}
