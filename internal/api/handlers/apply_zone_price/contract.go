package apply_zone_price

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
)

type PriceService interface {
	ApplyZonePrice(ctx context.Context, zone domain.Zone, req *models.ZonePriceRequest) (*models.PriceTableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
