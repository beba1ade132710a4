package cancel_reservation

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	CancelByCustomer(ctx context.Context, number, phone string) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
