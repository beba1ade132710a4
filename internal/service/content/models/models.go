package models

import (
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// PageBlock блок страницы
type PageBlock struct {
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	Body     string `json:"body,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// UpsertPageRequest страница целиком
type UpsertPageRequest struct {
	Title        string      `json:"title"`
	HeroImageURL *string     `json:"heroImageUrl,omitempty"`
	Blocks       []PageBlock `json:"blocks"`
	Published    bool        `json:"published"`
}

// PageResponse страница для сайта и админки
type PageResponse struct {
	Slug         string      `json:"slug"`
	Title        string      `json:"title"`
	HeroImageURL *string     `json:"heroImageUrl,omitempty"`
	Blocks       []PageBlock `json:"blocks"`
	Published    bool        `json:"published"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// UploadResponse результат загрузки изображения
type UploadResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// FromDomainPage конвертирует доменную модель в ответ
func FromDomainPage(p *domain.Page) PageResponse {
	blocks := make([]PageBlock, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		blocks = append(blocks, PageBlock(b))
	}
	return PageResponse{
		Slug:         p.Slug,
		Title:        p.Title,
		HeroImageURL: p.HeroImageURL,
		Blocks:       blocks,
		Published:    p.Published,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToDomainBlocks блоки запроса в доменные
func ToDomainBlocks(blocks []PageBlock) []domain.PageBlock {
	out := make([]domain.PageBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, domain.PageBlock(b))
	}
	return out
}
