package list_rooms

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context) ([]models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
