package get_dashboard

import (
	"math"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// OccupiedRooms число различных номеров, занятых в ночь date (CheckIn <= date < CheckOut).
// Отмененные бронирования не учитываются.
func OccupiedRooms(reservations []*domain.Reservation, date time.Time) int {
	rooms := make(map[string]struct{})
	for _, r := range reservations {
		if r.IsCancelled() || !r.OccupiesNight(date) {
			continue
		}
		rooms[r.RoomID] = struct{}{}
	}
	return len(rooms)
}

// DailyRate процент занятости, округленный до целого
func DailyRate(occupied, totalRooms int) int {
	if totalRooms <= 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(totalRooms) * 100))
}

// SoldNights сумма ночей неотмененных бронирований
func SoldNights(reservations []*domain.Reservation) int {
	var nights int
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		nights += r.Nights
	}
	return nights
}

// MonthlyRate процент занятости за месяц: проданные ночи / (номера × дни месяца) × 100
func MonthlyRate(soldNights, roomCount int, month time.Time) float64 {
	capacity := roomCount * DaysInMonth(month)
	if capacity <= 0 {
		return 0
	}
	return RoundMonthlyRate(float64(soldNights) / float64(capacity) * 100)
}

// RoundMonthlyRate меньше 1% - один знак после запятой, иначе целое
func RoundMonthlyRate(rate float64) float64 {
	if rate < 1 {
		return math.Round(rate*10) / 10
	}
	return math.Round(rate)
}

// Revenue сумма total_amount; статус не фильтруется
func Revenue(reservations []*domain.Reservation) int64 {
	var total int64
	for _, r := range reservations {
		total += r.TotalAmount
	}
	return total
}

// DaysInMonth количество дней в месяце month
func DaysInMonth(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// localMidnight полночь календарного дня d в часовом поясе loc
func localMidnight(d time.Time, loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}
