package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	Count(ctx context.Context) (int, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
