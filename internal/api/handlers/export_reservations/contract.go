package export_reservations

import (
	"context"
	"io"

	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	Export(ctx context.Context, req *models.ListRequest, w io.Writer) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
