package search_rooms

import (
	"context"
	"fmt"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// UseCase поиск свободных номеров
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет поиск
func (uc *UseCase) Execute(ctx context.Context, c Criteria) (*Response, error) {
	uc.logger.Info("SearchRooms: %s", c.Encode())

	// 1. Валидация критериев
	if err := validateCriteria(c); err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{Criteria: c, Rooms: []*domain.Room{}}

	// 2. Без взрослых поиск не имеет смысла
	if c.Adults < 1 {
		return resp, nil
	}

	// 3. Получаем все номера
	rooms, err := uc.roomRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("SearchRooms: failed to get rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 4. Фильтр по зоне и вместимости
	party := c.Adults + c.Children
	candidates := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !c.AllZones() && string(room.Zone) != c.Zone {
			continue
		}
		if !room.Fits(party) {
			continue
		}
		candidates = append(candidates, room)
	}

	// 5. Исключаем занятые номера. Ошибка запроса не фатальна: шаг пропускается.
	if c.HasDates() {
		booked, err := uc.reservationRepo.GetBookedRoomIDs(ctx, *c.CheckIn, *c.CheckOut)
		if err != nil {
			uc.logger.Warn("SearchRooms: overlap query failed, availability not checked: %v", err)
		} else {
			candidates = excludeBooked(candidates, booked)
			resp.AvailabilityChecked = true
		}
	}

	// 6. Сортировка: зона, затем номер
	domain.SortRooms(candidates)
	resp.Rooms = candidates

	uc.logger.Info("SearchRooms: found %d rooms", len(candidates))
	return resp, nil
}

func excludeBooked(rooms []*domain.Room, booked []string) []*domain.Room {
	if len(booked) == 0 {
		return rooms
	}

	taken := make(map[string]struct{}, len(booked))
	for _, id := range booked {
		taken[id] = struct{}{}
	}

	free := rooms[:0]
	for _, room := range rooms {
		if _, ok := taken[room.ID]; !ok {
			free = append(free, room)
		}
	}
	return free
}
