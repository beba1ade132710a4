package create_reservation

import (
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID       string
	CheckIn      time.Time
	CheckOut     time.Time
	BookerName   string
	BookerPhone  string
	BookerEmail  *string
	GuestName    *string // проживающий, если это не бронирующий
	GuestPhone   *string
	Guests       domain.GuestCounts
	Options      []string
	CustomerNote *string
	Agreed       bool // согласие с правилами проживания и обработкой данных
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.Reservation
	Fees        domain.FeeBreakdown
}
