package get_weather

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/integrations/weather"
)

type WeatherClient interface {
	GetCurrent(ctx context.Context) (*weather.Current, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
