package quote_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/villa-booking-service/internal/domain"
	priceRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/price"
	roomRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/room"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

// UseCase расчет стоимости проживания для формы бронирования
type UseCase struct {
	roomRepo        RoomRepository
	priceRepo       PriceRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	priceRepo PriceRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		priceRepo:       priceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute считает стоимость, ничего не сохраняя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteReservation: room=%s, %s..%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteReservation: validation failed: %v", err)
		return nil, err
	}

	options, err := domain.ParseOptionKeys(req.Options)
	if err != nil {
		uc.logger.Warn("QuoteReservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("QuoteReservation: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("QuoteReservation: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Цены по дням недели; без строки в таблице цен считаем по текущей цене номера
	price, err := uc.priceRepo.GetByRoomID(ctx, room.ID)
	if err != nil && !errors.Is(err, priceRepo.ErrPriceNotFound) {
		uc.logger.Error("QuoteReservation: failed to get price for room id=%s: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	// 4. Расчет
	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)
	base := domain.StayRoomPrice(room, price, req.CheckIn, nights)
	fees := domain.CalculateFees(room, base, req.Guests, options)

	resp := &Response{
		RoomID:            room.ID,
		RoomName:          room.Name,
		Nights:            nights,
		StandardOccupancy: room.StandardOccupancy,
		MaxOccupancy:      room.MaxOccupancy,
		Options:           options,
		Fees:              fees,
		OverCapacity:      domain.CheckCapacity(room, req.Guests) != nil,
	}

	// 5. Занятость носит справочный характер, ошибка не прерывает расчет
	booked, err := uc.reservationRepo.GetBookedRoomIDs(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("QuoteReservation: overlap query failed: %v", err)
	} else {
		resp.Available = ptr.Ptr(!containsRoom(booked, room.ID))
	}

	return resp, nil
}

func containsRoom(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
