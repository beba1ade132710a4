package quote_reservation

import (
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Request модель запроса расчета стоимости
type Request struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   domain.GuestCounts
	Options  []string
}

// Response расчет без сохранения
type Response struct {
	RoomID            string
	RoomName          string
	Nights            int
	StandardOccupancy int
	MaxOccupancy      int
	Options           []domain.OptionKey
	Fees              domain.FeeBreakdown
	// OverCapacity блокирует отправку формы бронирования
	OverCapacity bool
	// Available nil, если проверить занятость не удалось
	Available *bool
}
