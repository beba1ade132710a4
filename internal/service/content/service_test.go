package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/filestore"
	contentRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/content"
	"github.com/m04kA/villa-booking-service/internal/service/content/models"
	"github.com/m04kA/villa-booking-service/pkg/logger"
)

// pngHeader сигнатура PNG, по которой http.DetectContentType определяет тип
var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, contentRepo.Migrate(db))

	dir := t.TempDir()
	svc := NewService(contentRepo.NewRepository(db), filestore.New(dir, "/uploads"), logger.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC) }
	return svc, dir
}

func TestPages(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "about", &models.UpsertPageRequest{
		Title:  "풀빌라 소개",
		Blocks: []models.PageBlock{{Kind: "text", Body: "환영합니다"}},
	})
	require.NoError(t, err)

	// черновик на сайте не виден
	_, err = svc.GetPublished(ctx, "about")
	assert.ErrorIs(t, err, ErrPageNotFound)

	draft, err := svc.Get(ctx, "about")
	require.NoError(t, err)
	assert.False(t, draft.Published)

	_, err = svc.Upsert(ctx, "about", &models.UpsertPageRequest{
		Title:     "풀빌라 소개",
		Blocks:    []models.PageBlock{{Kind: "image", ImageURL: "/uploads/pages/1.jpg"}},
		Published: true,
	})
	require.NoError(t, err)

	page, err := svc.GetPublished(ctx, "about")
	require.NoError(t, err)
	require.Len(t, page.Blocks, 1)
	assert.Equal(t, "image", page.Blocks[0].Kind)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.GetPublished(ctx, "missing")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestUpsert_Validation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "About Us", &models.UpsertPageRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(ctx, "about", &models.UpsertPageRequest{Title: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Upsert(ctx, "about", &models.UpsertPageRequest{Title: "x", Blocks: []models.PageBlock{{Kind: "video"}}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUploadImage(t *testing.T) {
	svc, dir := newTestService(t)

	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 100)...)
	resp, err := svc.UploadImage(context.Background(), "rooms", bytes.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, int64(len(body)), resp.Size)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/rooms/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, "rooms", filepath.Base(resp.URL)))
	require.NoError(t, err)
	assert.Equal(t, body, stored)
}

func TestUploadImage_Rejects(t *testing.T) {
	svc, dir := newTestService(t)
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, "rooms", strings.NewReader("plain text, not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	big := append(append([]byte{}, pngHeader...), make([]byte, domain.MaxUploadSizeBytes)...)
	_, err = svc.UploadImage(ctx, "rooms", bytes.NewReader(big))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = svc.UploadImage(ctx, "../etc", bytes.NewReader(pngHeader))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UploadImage(ctx, "rooms", bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrInvalidInput)

	// ничего не записано
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
