package get_prices

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
)

type PriceService interface {
	GetTable(ctx context.Context) (*models.PriceTableResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
