package quote_reservation

import (
	"context"

	quoteReservation "github.com/m04kA/villa-booking-service/internal/usecase/quote_reservation"
)

type QuoteUseCase interface {
	Execute(ctx context.Context, req *quoteReservation.Request) (*quoteReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
