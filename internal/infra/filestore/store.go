package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrStore ошибка записи файла
var ErrStore = errors.New("filestore: failed to store file")

// Store хранилище загруженных изображений на диске.
// Файлы раздаются статикой по publicBaseURL.
type Store struct {
	dir           string
	publicBaseURL string
	now           func() time.Time
}

func New(dir, publicBaseURL string) *Store {
	return &Store{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		now:           time.Now,
	}
}

// Save сохраняет содержимое под именем <unix-millis>-<random>.<ext> и возвращает публичный URL
func (s *Store) Save(ctx context.Context, folder string, body io.Reader, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := FileName(s.now(), ext)
	dir := filepath.Join(s.dir, filepath.Clean("/"+folder))

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir: %v", ErrStore, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: create: %v", ErrStore, err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("%w: write: %v", ErrStore, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close: %v", ErrStore, err)
	}

	return s.publicBaseURL + "/" + url.PathEscape(strings.Trim(folder, "/")) + "/" + name, nil
}

// FileName имя файла из времени загрузки и случайного суффикса, чтобы не было коллизий
func FileName(at time.Time, ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if ext == "" {
		return fmt.Sprintf("%d-%s", at.UnixMilli(), suffix)
	}
	return fmt.Sprintf("%d-%s.%s", at.UnixMilli(), suffix, ext)
}
