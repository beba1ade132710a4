package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/villa-booking-service/internal/domain"
	roomRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/room"
	"github.com/m04kA/villa-booking-service/internal/service/rooms/models"
)

// Service сервис справочника номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List все номера в порядке отображения
func (s *Service) List(ctx context.Context) ([]models.RoomResponse, error) {
	list, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: List - get rooms: %v", ErrInternal, err)
	}

	domain.SortRooms(list)
	return models.FromDomainRoomList(list), nil
}

// Get номер по идентификатору
func (s *Service) Get(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Get: room_id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - get room: %v", ErrInternal, err)
	}

	resp := models.FromDomainRoom(room)
	return &resp, nil
}

// Update меняет контентные поля номера (last write wins)
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	// 1. Валидация
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	pool := domain.PoolType(req.PoolType)
	if pool == "" {
		pool = domain.PoolNone
	}
	if !pool.IsValid() {
		return nil, fmt.Errorf("%w: unknown pool type %q", ErrInvalidInput, req.PoolType)
	}

	images := make([]string, 0, len(req.ImageURLs))
	for _, u := range req.ImageURLs {
		if u = strings.TrimSpace(u); u != "" {
			images = append(images, u)
		}
	}

	// 2. Текущая запись: площадь и состав комнат сохраняются как есть
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room_id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: room_id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get room: %v", ErrInternal, err)
	}

	room.Name = name
	room.Type = strings.TrimSpace(req.Type)
	room.Description = req.Description
	room.ImageURLs = images
	room.PetFriendly = req.PetFriendly
	room.PoolType = pool

	// 3. Сохранение
	if err := s.roomRepo.Update(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: room_id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - update room: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room_id=%s content updated", id)

	// 4. Актуальное состояние
	return s.Get(ctx, id)
}
