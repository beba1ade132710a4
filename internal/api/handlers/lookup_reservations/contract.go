package lookup_reservations

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	Lookup(ctx context.Context, name, phone string) ([]models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
