package update_page

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

type ContentService interface {
	Upsert(ctx context.Context, slug string, req *models.UpsertPageRequest) (*models.PageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
