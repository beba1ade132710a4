package bulk_update_status

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
)

type ReservationService interface {
	BulkUpdateStatus(ctx context.Context, req *models.BulkStatusRequest) (*models.BulkStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
