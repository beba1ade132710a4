package content

import (
	"context"
	"io"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// PageRepository интерфейс репозитория контентных страниц
type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Page, error)
	List(ctx context.Context, onlyPublished bool) ([]*domain.Page, error)
	Upsert(ctx context.Context, page *domain.Page) (*domain.Page, error)
}

// FileStore хранилище загруженных файлов
type FileStore interface {
	Save(ctx context.Context, folder string, body io.Reader, ext string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
