package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

// DefaultFolder каталог загрузок, если он не указан
const DefaultFolder = "misc"

// imageExtensions допустимые типы изображений и расширения файлов
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

var folderPattern = regexp.MustCompile(`^[a-z0-9-]{1,32}$`)

// UploadImage сохраняет изображение и возвращает его публичный URL.
// Тип определяется по содержимому, а не по имени файла.
func (s *Service) UploadImage(ctx context.Context, folder string, body io.Reader) (*models.UploadResponse, error) {
	// 1. Валидация каталога
	if folder == "" {
		folder = DefaultFolder
	}
	if !folderPattern.MatchString(folder) {
		return nil, fmt.Errorf("%w: invalid folder %q", ErrInvalidInput, folder)
	}

	// 2. Чтение с ограничением размера
	data, err := io.ReadAll(io.LimitReader(body, domain.MaxUploadSizeBytes+1))
	if err != nil {
		s.logger.Error("UploadImage: read body: %v", err)
		return nil, fmt.Errorf("%w: UploadImage - read body: %v", ErrInternal, err)
	}
	if len(data) > domain.MaxUploadSizeBytes {
		s.logger.Warn("UploadImage: file exceeds %d bytes", domain.MaxUploadSizeBytes)
		return nil, ErrFileTooLarge
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	// 3. Тип по первым байтам
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		s.logger.Warn("UploadImage: rejected content type %s", contentType)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	// 4. Сохранение
	url, err := s.files.Save(ctx, folder, bytes.NewReader(data), ext)
	if err != nil {
		s.logger.Error("UploadImage: save: %v", err)
		return nil, fmt.Errorf("%w: UploadImage - save file: %v", ErrInternal, err)
	}

	s.logger.Info("UploadImage: stored %s (%s, %d bytes)", url, contentType, len(data))

	return &models.UploadResponse{
		URL:         url,
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}
