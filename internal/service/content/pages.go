package content

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/villa-booking-service/internal/domain"
	contentRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/content"
	"github.com/m04kA/villa-booking-service/internal/service/content/models"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

var blockKinds = map[string]bool{"text": true, "image": true, "gallery": true}

// GetPublished опубликованная страница для сайта; черновик отдается как не найденный
func (s *Service) GetPublished(ctx context.Context, slug string) (*models.PageResponse, error) {
	page, err := s.getPage(ctx, "GetPublished", slug)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, ErrPageNotFound
	}

	resp := models.FromDomainPage(page)
	return &resp, nil
}

// Get страница для админки, включая черновики
func (s *Service) Get(ctx context.Context, slug string) (*models.PageResponse, error) {
	page, err := s.getPage(ctx, "Get", slug)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainPage(page)
	return &resp, nil
}

// List все страницы для админки
func (s *Service) List(ctx context.Context) ([]models.PageResponse, error) {
	pages, err := s.pageRepo.List(ctx, false)
	if err != nil {
		s.logger.Error("List: %v", err)
		return nil, fmt.Errorf("%w: List - list pages: %v", ErrInternal, err)
	}

	out := make([]models.PageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, models.FromDomainPage(p))
	}
	return out, nil
}

// Upsert создает или перезаписывает страницу (last write wins)
func (s *Service) Upsert(ctx context.Context, slug string, req *models.UpsertPageRequest) (*models.PageResponse, error) {
	if !slugPattern.MatchString(slug) {
		return nil, fmt.Errorf("%w: invalid slug %q", ErrInvalidInput, slug)
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	for i, b := range req.Blocks {
		if !blockKinds[b.Kind] {
			return nil, fmt.Errorf("%w: block #%d has unknown kind %q", ErrInvalidInput, i, b.Kind)
		}
	}

	saved, err := s.pageRepo.Upsert(ctx, &domain.Page{
		Slug:         slug,
		Title:        title,
		HeroImageURL: req.HeroImageURL,
		Blocks:       models.ToDomainBlocks(req.Blocks),
		Published:    req.Published,
		UpdatedAt:    s.now().UTC(),
	})
	if err != nil {
		s.logger.Error("Upsert: slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: Upsert - save page: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: slug=%s published=%t blocks=%d", slug, saved.Published, len(saved.Blocks))

	resp := models.FromDomainPage(saved)
	return &resp, nil
}

func (s *Service) getPage(ctx context.Context, op, slug string) (*domain.Page, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, contentRepo.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		s.logger.Error("%s: slug=%s: %v", op, slug, err)
		return nil, fmt.Errorf("%w: %s - get page: %v", ErrInternal, op, err)
	}
	return page, nil
}

