package content

import "time"

// Service сервис контента сайта: страницы и загрузка изображений
type Service struct {
	pageRepo PageRepository
	files    FileStore
	logger   Logger
	now      func() time.Time
}

// NewService создает новый экземпляр сервиса контента
func NewService(pageRepo PageRepository, files FileStore, logger Logger) *Service {
	return &Service{
		pageRepo: pageRepo,
		files:    files,
		logger:   logger,
		now:      time.Now,
	}
}
