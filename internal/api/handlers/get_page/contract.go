package get_page

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

type ContentService interface {
	GetPublished(ctx context.Context, slug string) (*models.PageResponse, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
