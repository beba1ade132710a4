package get_dashboard

import (
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// MaxRangeDays максимальная длина периода дневной статистики
const MaxRangeDays = 93

// Request период дашборда, обе даты включительно. Нулевые даты - текущий месяц.
type Request struct {
	From time.Time
	To   time.Time
}

// DailyOccupancy занятость на одну ночь
type DailyOccupancy struct {
	Date     time.Time
	Occupied int
	Rate     int // проценты
}

// MonthlyOccupancy проданные ночи среди бронирований, созданных в месяце
type MonthlyOccupancy struct {
	Month      time.Time // первое число месяца
	SoldNights int
	Rate       float64 // проценты, см. RoundMonthlyRate
	Revenue    int64   // по дате бронирования
}

// Response данные дашборда
type Response struct {
	From       time.Time
	To         time.Time
	TotalRooms int
	Daily      []DailyOccupancy
	Monthly    []MonthlyOccupancy
	// Revenue сумма total_amount бронирований, созданных в периоде, независимо от статуса
	Revenue      int64
	Today        time.Time
	CheckIns     []*domain.Reservation
	CheckOuts    []*domain.Reservation
	PendingCount int
}
