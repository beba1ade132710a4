package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/villa-booking-service/internal/domain"
	priceRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/price"
	reservationRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/villa-booking-service/internal/infra/storage/room"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	roomRepo        RoomRepository
	priceRepo       PriceRepository
	reservationRepo ReservationRepository
	numbers         NumberAllocator
	txManager       TransactionManager
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	priceRepo PriceRepository,
	reservationRepo ReservationRepository,
	numbers NumberAllocator,
	txManager TransactionManager,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		priceRepo:       priceRepo,
		reservationRepo: reservationRepo,
		numbers:         numbers,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%s, %s..%s, guests=%d",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests.Total())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	options, err := domain.ParseOptionKeys(req.Options)
	if err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Дата заезда не в прошлом
	now := uc.timeProvider.Now()
	if err := validateCheckIn(req.CheckIn, now); err != nil {
		uc.logger.Warn("CreateReservation: check-in %s is in the past", req.CheckIn.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Получаем номер
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateReservation: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateReservation: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 4. Вместимость: блокирующая проверка, без автокоррекции
	if err := domain.CheckCapacity(room, req.Guests); err != nil {
		uc.logger.Warn("CreateReservation: %d guests exceed max occupancy %d of room %s",
			req.Guests.Total(), room.MaxOccupancy, room.ID)
		return nil, ErrOverCapacity
	}

	// 5. Стоимость
	price, err := uc.priceRepo.GetByRoomID(ctx, room.ID)
	if err != nil && !errors.Is(err, priceRepo.ErrPriceNotFound) {
		uc.logger.Error("CreateReservation: failed to get price for room id=%s: %v", room.ID, err)
		return nil, fmt.Errorf("%w: failed to get price: %v", ErrInternal, err)
	}

	nights := domain.NightsBetween(req.CheckIn, req.CheckOut)
	fees := domain.CalculateFees(room, domain.StayRoomPrice(room, price, req.CheckIn, nights), req.Guests, options)

	reservation := &domain.Reservation{
		RoomID:        room.ID,
		RoomName:      room.Name,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        nights,
		BookerName:    strings.TrimSpace(req.BookerName),
		BookerPhone:   normalizePhone(req.BookerPhone),
		BookerEmail:   trimmedOrNil(req.BookerEmail),
		GuestName:     trimmedOrNil(req.GuestName),
		GuestPhone:    trimmedOrNil(req.GuestPhone),
		Guests:        req.Guests,
		Options:       options,
		CustomerNote:  trimmedOrNil(req.CustomerNote),
		RoomPrice:     fees.BasePrice,
		AdditionalFee: fees.AdditionalFee,
		OptionsFee:    fees.OptionsFee,
		TotalAmount:   fees.Total,
		Status:        domain.StatusPending,
	}
	if reservation.GuestPhone != nil {
		reservation.GuestPhone = ptr.Ptr(normalizePhone(*reservation.GuestPhone))
	}

	// 6. Номер бронирования и вставка. Дубликат номера в БД откатывает транзакцию,
	// поэтому повтор идет целиком: новый номер и новая транзакция.
	var created *domain.Reservation
	for attempt := 1; ; attempt++ {
		number, err := uc.numbers.Next(ctx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to allocate number: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrNumberUnavailable, err)
		}
		reservation.Number = number

		created, err = uc.insert(ctx, room.ID, reservation)
		if err == nil {
			break
		}
		if !errors.Is(err, errDuplicateNumber) {
			return nil, err
		}
		if attempt >= domain.ReservationNumberAttempts {
			uc.logger.Error("CreateReservation: number collisions after %d attempts", attempt)
			return nil, ErrNumberUnavailable
		}
		uc.logger.Warn("CreateReservation: number %s already stored, retrying", number)
	}

	uc.metrics.IncReservationCreated()
	uc.logger.Info("CreateReservation: reservation %s created, room=%s, total=%d", created.Number, created.RoomID, created.TotalAmount)

	return &Response{Reservation: created, Fees: fees}, nil
}

// insert проверяет пересечения и сохраняет бронирование в сериализуемой транзакции
func (uc *UseCase) insert(ctx context.Context, roomID string, reservation *domain.Reservation) (*domain.Reservation, error) {
	var created *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Повторная проверка: номер мог занять кто-то другой после поиска
		booked, err := uc.reservationRepo.GetBookedRoomIDs(txCtx, reservation.CheckIn, reservation.CheckOut)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		for _, id := range booked {
			if id == roomID {
				uc.logger.Warn("CreateReservation: room %s already booked for %s..%s",
					roomID, reservation.CheckIn.Format(domain.DateFormat), reservation.CheckOut.Format(domain.DateFormat))
				return ErrRoomNotAvailable
			}
		}

		created, err = uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrDuplicateNumber) {
				return errDuplicateNumber
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	return created, err
}
