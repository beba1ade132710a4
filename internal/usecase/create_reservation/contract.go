package create_reservation

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
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetBookedRoomIDs(ctx context.Context, from, to time.Time) ([]string, error)
}

// NumberAllocator выдает номера бронирований
type NumberAllocator interface {
	Next(ctx context.Context) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики; реализация должна допускать nil-получатель
type Metrics interface {
	IncReservationCreated()
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

// RealTimeProvider реальный провайдер времени в часовом поясе виллы
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
