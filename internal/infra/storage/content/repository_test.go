package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// у каждого соединения своя in-memory база
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return NewRepository(db)
}

func TestRepository_UpsertAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &domain.Page{
		Slug:         "about",
		Title:        "풀빌라 소개",
		HeroImageURL: ptr.Ptr("https://cdn.example.com/hero.jpg"),
		Blocks: []domain.PageBlock{
			{Kind: "text", Title: "환영합니다", Body: "..."},
			{Kind: "image", ImageURL: "https://cdn.example.com/pool.jpg"},
		},
		Published: true,
	})
	require.NoError(t, err)

	page, err := repo.GetBySlug(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "풀빌라 소개", page.Title)
	require.Len(t, page.Blocks, 2)
	assert.Equal(t, "image", page.Blocks[1].Kind)

	// повторная запись перезаписывает страницу
	_, err = repo.Upsert(ctx, &domain.Page{Slug: "about", Title: "소개", Published: false})
	require.NoError(t, err)

	page, err = repo.GetBySlug(ctx, "about")
	require.NoError(t, err)
	assert.Equal(t, "소개", page.Title)
	assert.Empty(t, page.Blocks)
	assert.False(t, page.Published)
}

func TestRepository_GetBySlug_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestRepository_List_OnlyPublished(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &domain.Page{Slug: "draft", Title: "draft"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &domain.Page{Slug: "events", Title: "이벤트", Published: true})
	require.NoError(t, err)

	pages, err := repo.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "events", pages[0].Slug)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
