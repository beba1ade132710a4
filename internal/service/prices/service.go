package prices

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/villa-booking-service/internal/domain"
	roomRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/room"
	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
	"github.com/m04kA/villa-booking-service/pkg/batch"
)

// Service сервис таблицы цен
type Service struct {
	roomRepo  RoomRepository
	priceRepo PriceRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса цен
func NewService(
	roomRepo RoomRepository,
	priceRepo PriceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:  roomRepo,
		priceRepo: priceRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetTable таблица цен по всем номерам и средние по зонам.
// Номер без строки в таблице цен показывается с текущей ценой номера для всех типов дней.
func (s *Service) GetTable(ctx context.Context) (*models.PriceTableResponse, error) {
	rooms, effective, err := s.effectivePrices(ctx)
	if err != nil {
		s.logger.Error("GetTable: %v", err)
		return nil, fmt.Errorf("%w: GetTable - %v", ErrInternal, err)
	}

	resp := &models.PriceTableResponse{
		Rooms: make([]models.RoomPriceResponse, 0, len(rooms)),
		Zones: make([]models.ZoneAverageResponse, 0, len(domain.Zones)),
	}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, models.FromDomainPrice(room, effective[room.ID]))
	}

	averages := ZoneAverages(priceList(effective))
	for _, zone := range domain.Zones {
		avg, ok := averages[zone]
		if !ok {
			continue
		}
		resp.Zones = append(resp.Zones, models.ZoneAverageResponse{
			Zone:      string(zone),
			RoomCount: avg.RoomCount,
			Weekday:   avg.Weekday,
			Friday:    avg.Friday,
			Saturday:  avg.Saturday,
		})
	}

	s.logger.Info("GetTable: %d rooms", len(resp.Rooms))
	return resp, nil
}

// UpdatePrices применяет правки одной транзакцией: любая ошибка откатывает все строки.
// Текущая цена номера синхронизируется с ценой буднего дня.
func (s *Service) UpdatePrices(ctx context.Context, req *models.UpdatePricesRequest) (*models.PriceTableResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items are required", ErrInvalidInput)
	}
	for _, item := range req.Items {
		if err := validateItem(item); err != nil {
			s.logger.Warn("UpdatePrices: %v", err)
			return nil, err
		}
	}

	s.logger.Info("UpdatePrices: %d rooms", len(req.Items))

	err := batch.RunAllOrNothing(ctx, s.txManager, req.Items, s.applyItem)
	if err != nil {
		return nil, s.mapBatchError("UpdatePrices", err)
	}

	return s.GetTable(ctx)
}

// ApplyZonePrice выставляет одинаковые цены всем номерам зоны.
// Не заданные в запросе значения берутся из текущего среднего по зоне.
func (s *Service) ApplyZonePrice(ctx context.Context, zone domain.Zone, req *models.ZonePriceRequest) (*models.PriceTableResponse, error) {
	if !zone.IsValid() {
		return nil, fmt.Errorf("%w: unknown zone %q", ErrInvalidInput, zone)
	}

	rooms, effective, err := s.effectivePrices(ctx)
	if err != nil {
		s.logger.Error("ApplyZonePrice: %v", err)
		return nil, fmt.Errorf("%w: ApplyZonePrice - %v", ErrInternal, err)
	}

	avg, ok := ZoneAverages(priceList(effective))[zone]
	if !ok {
		s.logger.Warn("ApplyZonePrice: zone %s has no rooms", zone)
		return nil, ErrZoneEmpty
	}

	template := models.PriceItem{
		Weekday:  valueOr(req.Weekday, avg.Weekday),
		Friday:   valueOr(req.Friday, avg.Friday),
		Saturday: valueOr(req.Saturday, avg.Saturday),
	}

	items := make([]models.PriceItem, 0, avg.RoomCount)
	for _, room := range rooms {
		if room.Zone != zone {
			continue
		}
		item := template
		item.RoomID = room.ID
		if err := validateItem(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	s.logger.Info("ApplyZonePrice: zone=%s weekday=%d friday=%d saturday=%d rooms=%d",
		zone, template.Weekday, template.Friday, template.Saturday, len(items))

	if err := batch.RunAllOrNothing(ctx, s.txManager, items, s.applyItem); err != nil {
		return nil, s.mapBatchError("ApplyZonePrice", err)
	}

	return s.GetTable(ctx)
}

// Вспомогательные методы

func (s *Service) applyItem(ctx context.Context, item models.PriceItem) error {
	room, err := s.roomRepo.GetByID(ctx, item.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return fmt.Errorf("%w: %s", ErrRoomNotFound, item.RoomID)
		}
		return err
	}

	if err := s.priceRepo.Upsert(ctx, &domain.RoomPrice{
		RoomID:        room.ID,
		Zone:          room.Zone,
		WeekdayPrice:  item.Weekday,
		FridayPrice:   item.Friday,
		SaturdayPrice: item.Saturday,
	}); err != nil {
		return err
	}

	return s.roomRepo.UpdatePrice(ctx, room.ID, item.Weekday)
}

func (s *Service) mapBatchError(op string, err error) error {
	if errors.Is(err, ErrRoomNotFound) {
		s.logger.Warn("%s: %v", op, err)
		return err
	}
	s.logger.Error("%s: batch rolled back: %v", op, err)
	return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
}

// effectivePrices номера (отсортированы) и действующие цены по id номера
func (s *Service) effectivePrices(ctx context.Context) ([]*domain.Room, map[string]*domain.RoomPrice, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get rooms: %v", err)
	}

	stored, err := s.priceRepo.GetAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get prices: %v", err)
	}

	byRoom := make(map[string]*domain.RoomPrice, len(stored))
	for _, p := range stored {
		byRoom[p.RoomID] = p
	}

	effective := make(map[string]*domain.RoomPrice, len(rooms))
	for _, room := range rooms {
		p, ok := byRoom[room.ID]
		if !ok {
			p = &domain.RoomPrice{RoomID: room.ID, WeekdayPrice: room.Price, FridayPrice: room.Price, SaturdayPrice: room.Price}
		}
		// зона номера главнее зоны, сохраненной в строке цен
		p.Zone = room.Zone
		effective[room.ID] = p
	}

	domain.SortRooms(rooms)
	return rooms, effective, nil
}

func priceList(m map[string]*domain.RoomPrice) []*domain.RoomPrice {
	out := make([]*domain.RoomPrice, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	return out
}

func validateItem(item models.PriceItem) error {
	if item.RoomID == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if item.Weekday <= 0 || item.Friday <= 0 || item.Saturday <= 0 {
		return fmt.Errorf("%w: prices of room %s must be positive", ErrInvalidInput, item.RoomID)
	}
	return nil
}

func valueOr(v *int64, def int64) int64 {
	if v == nil {
		return def
	}
	return *v
}
