package reservations

import (
	"context"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByNumber(ctx context.Context, number string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
	FindByBooker(ctx context.Context, name, phone string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, actor domain.CancelActor, at time.Time) error
	SetCheckedIn(ctx context.Context, id int64, checked bool, at time.Time) error
	SetCheckedOut(ctx context.Context, id int64, checked bool, at time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics бизнес-метрики; реализация должна допускать nil-получатель
type Metrics interface {
	IncReservationCancelled(actor string)
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
