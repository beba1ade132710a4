package list_pages

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

type ContentService interface {
	List(ctx context.Context) ([]models.PageResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
