package get_dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func TestOccupiedRooms(t *testing.T) {
	list := []*domain.Reservation{
		{RoomID: "A1", CheckIn: day("2025-08-01"), CheckOut: day("2025-08-03"), Status: domain.StatusConfirmed},
		{RoomID: "A1", CheckIn: day("2025-08-02"), CheckOut: day("2025-08-04"), Status: domain.StatusPending},
		{RoomID: "B1", CheckIn: day("2025-08-02"), CheckOut: day("2025-08-03"), Status: domain.StatusCancelled},
		{RoomID: "C1", CheckIn: day("2025-07-30"), CheckOut: day("2025-08-02"), Status: domain.StatusConfirmed},
	}

	// A1 считается один раз, B1 отменен, C1 выезжает 2-го
	assert.Equal(t, 1, OccupiedRooms(list, day("2025-08-02")))
	assert.Equal(t, 2, OccupiedRooms(list, day("2025-08-01")))
	assert.Equal(t, 0, OccupiedRooms(list, day("2025-08-04")))
}

func TestDailyRate(t *testing.T) {
	assert.Equal(t, 33, DailyRate(1, 3))
	assert.Equal(t, 67, DailyRate(2, 3))
	assert.Equal(t, 100, DailyRate(20, 20))
	assert.Equal(t, 0, DailyRate(1, 0))
}

func TestMonthlyRate(t *testing.T) {
	august := day("2025-08-01")

	tests := []struct {
		name  string
		sold  int
		rooms int
		want  float64
	}{
		// 1 / (20 * 31) * 100 = 0.161...
		{"below one percent keeps one decimal", 1, 20, 0.2},
		// 3 / 620 * 100 = 0.483...
		{"below one percent rounds to tenth", 3, 20, 0.5},
		// 10 / 620 * 100 = 1.61...
		{"one percent and above is integer", 10, 20, 2},
		{"full month", 620, 20, 100},
		{"no rooms", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthlyRate(tt.sold, tt.rooms, august))
		})
	}
}

func TestSoldNightsAndRevenue(t *testing.T) {
	list := []*domain.Reservation{
		{Nights: 2, TotalAmount: 500000, Status: domain.StatusConfirmed},
		{Nights: 3, TotalAmount: 900000, Status: domain.StatusCancelled},
		{Nights: 1, TotalAmount: 200000, Status: domain.StatusPending},
	}

	assert.Equal(t, 3, SoldNights(list))
	// выручка по дате бронирования не фильтрует статус
	assert.Equal(t, int64(1600000), Revenue(list))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(day("2024-02-10")))
	assert.Equal(t, 28, DaysInMonth(day("2025-02-01")))
	assert.Equal(t, 31, DaysInMonth(day("2025-12-31")))
}
