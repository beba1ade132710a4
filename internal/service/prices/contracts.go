package prices

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// RoomRepository интерфейс репозитория номеров
type RoomRepository interface {
	GetAll(ctx context.Context) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	UpdatePrice(ctx context.Context, id string, price int64) error
}

// PriceRepository интерфейс репозитория цен
type PriceRepository interface {
	GetAll(ctx context.Context) ([]*domain.RoomPrice, error)
	Upsert(ctx context.Context, p *domain.RoomPrice) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
