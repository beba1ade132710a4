package content

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// pageModel строка таблицы pages. Блоки страницы лежат одним JSON-полем.
type pageModel struct {
	Slug         string `gorm:"primaryKey;size:64"`
	Title        string `gorm:"not null"`
	HeroImageURL *string
	Blocks       datatypes.JSON
	Published    bool `gorm:"not null;default:false"`
	UpdatedAt    time.Time
}

func (pageModel) TableName() string {
	return "pages"
}

func toModel(p *domain.Page) (*pageModel, error) {
	blocks := p.Blocks
	if blocks == nil {
		blocks = []domain.PageBlock{}
	}

	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, err
	}

	return &pageModel{
		Slug:         p.Slug,
		Title:        p.Title,
		HeroImageURL: p.HeroImageURL,
		Blocks:       datatypes.JSON(raw),
		Published:    p.Published,
		UpdatedAt:    p.UpdatedAt,
	}, nil
}

func (m *pageModel) toDomain() (*domain.Page, error) {
	blocks := make([]domain.PageBlock, 0)
	if len(m.Blocks) > 0 {
		if err := json.Unmarshal(m.Blocks, &blocks); err != nil {
			return nil, err
		}
	}

	return &domain.Page{
		Slug:         m.Slug,
		Title:        m.Title,
		HeroImageURL: m.HeroImageURL,
		Blocks:       blocks,
		Published:    m.Published,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
