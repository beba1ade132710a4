package update_prices

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
)

type PriceService interface {
	UpdatePrices(ctx context.Context, req *models.UpdatePricesRequest) (*models.PriceTableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
