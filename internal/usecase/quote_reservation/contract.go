package quote_reservation

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Room, error)
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	GetByRoomID(ctx context.Context, roomID string) (*domain.RoomPrice, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetBookedRoomIDs(ctx context.Context, from, to time.Time) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
