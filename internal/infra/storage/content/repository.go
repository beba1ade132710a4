package content

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Repository контентные страницы сайта (gorm)
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate создает таблицу страниц, если её нет
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&pageModel{})
}

// GetBySlug получает страницу по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	var m pageModel
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug: %v", ErrQuery, err)
	}

	page, err := m.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug: %v", ErrEncode, err)
	}

	return page, nil
}

// List все страницы; onlyPublished скрывает черновики
func (r *Repository) List(ctx context.Context, onlyPublished bool) ([]*domain.Page, error) {
	q := r.db.WithContext(ctx).Order("slug ASC")
	if onlyPublished {
		q = q.Where("published = ?", true)
	}

	var models []pageModel
	if err := q.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("%w: List: %v", ErrQuery, err)
	}

	pages := make([]*domain.Page, 0, len(models))
	for i := range models {
		page, err := models[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: List slug=%s: %v", ErrEncode, models[i].Slug, err)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// Upsert создает или перезаписывает страницу целиком (last write wins)
func (r *Repository) Upsert(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	m, err := toModel(page)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrEncode, err)
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "hero_image_url", "blocks", "published", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrQuery, err)
	}

	return m.toDomain()
}
