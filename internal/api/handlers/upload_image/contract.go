package upload_image

import (
	"context"
	"io"

	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

type ContentService interface {
	UploadImage(ctx context.Context, folder string, body io.Reader) (*models.UploadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
