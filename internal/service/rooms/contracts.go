package rooms

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetAll(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
