package get_dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

// UseCase сводка для главной страницы админки
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// location часовой пояс виллы: в нем считаются "сегодня" и день/месяц создания бронирования.
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	timeProvider TimeProvider,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		timeProvider:    timeProvider,
		location:        location,
		logger:          logger,
	}
}

// Execute собирает дашборд. Занятость считается по датам проживания,
// выручка и месячная занятость - по дате создания бронирования.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	today := domain.CalendarDate(uc.timeProvider.Now().In(uc.location))

	// 1. Период
	req, err := normalizeRequest(req, today)
	if err != nil {
		uc.logger.Warn("GetDashboard: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("GetDashboard: %s..%s", req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	end := req.To.AddDate(0, 0, 1)
	firstMonth := monthStart(req.From)
	afterLastMonth := monthStart(req.To).AddDate(0, 1, 0)

	// created_at - момент времени, границы месяцев берем по полуночи виллы
	createdFrom := localMidnight(firstMonth, uc.location)
	createdTo := localMidnight(afterLastMonth, uc.location)

	var (
		totalRooms  int
		staying     []*domain.Reservation
		createdInMo []*domain.Reservation
		todays      []*domain.Reservation
		pending     int
	)

	// 2. Независимые запросы выполняем параллельно
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.roomRepo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count rooms: %v", err)
		}
		totalRooms = n
		return nil
	})

	g.Go(func() error {
		list, err := uc.reservationRepo.List(gctx, domain.ReservationFilter{StayFrom: &req.From, StayTo: &end})
		if err != nil {
			return fmt.Errorf("list staying: %v", err)
		}
		staying = list
		return nil
	})

	g.Go(func() error {
		// отмененные нужны для выручки, из занятости они исключаются в SoldNights
		list, err := uc.reservationRepo.List(gctx, domain.ReservationFilter{
			CreatedFrom:   &createdFrom,
			CreatedTo:     &createdTo,
			IncludeCancel: true,
		})
		if err != nil {
			return fmt.Errorf("list created: %v", err)
		}
		createdInMo = list
		return nil
	})

	g.Go(func() error {
		tomorrow := today.AddDate(0, 0, 1)
		list, err := uc.reservationRepo.List(gctx, domain.ReservationFilter{StayFrom: ptr.Ptr(today.AddDate(0, 0, -1)), StayTo: &tomorrow})
		if err != nil {
			return fmt.Errorf("list today: %v", err)
		}
		todays = list
		return nil
	})

	g.Go(func() error {
		n, err := uc.reservationRepo.Count(gctx, domain.ReservationFilter{Status: ptr.Ptr(domain.StatusPending)})
		if err != nil {
			return fmt.Errorf("count pending: %v", err)
		}
		pending = n
		return nil
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetDashboard: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Агрегация
	resp := &Response{
		From:         req.From,
		To:           req.To,
		TotalRooms:   totalRooms,
		Daily:        buildDaily(staying, req.From, req.To, totalRooms),
		Monthly:      buildMonthly(createdInMo, firstMonth, afterLastMonth, totalRooms, uc.location),
		Today:        today,
		CheckIns:     make([]*domain.Reservation, 0),
		CheckOuts:    make([]*domain.Reservation, 0),
		PendingCount: pending,
	}

	for _, r := range createdInMo {
		created := domain.CalendarDate(r.CreatedAt.In(uc.location))
		if !created.Before(req.From) && created.Before(end) {
			resp.Revenue += r.TotalAmount
		}
	}

	for _, r := range todays {
		if domain.CalendarDate(r.CheckIn).Equal(today) {
			resp.CheckIns = append(resp.CheckIns, r)
		}
		if domain.CalendarDate(r.CheckOut).Equal(today) {
			resp.CheckOuts = append(resp.CheckOuts, r)
		}
	}

	return resp, nil
}

func buildDaily(reservations []*domain.Reservation, from, to time.Time, totalRooms int) []DailyOccupancy {
	days := make([]DailyOccupancy, 0, int(to.Sub(from).Hours()/24)+1)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		occupied := OccupiedRooms(reservations, d)
		days = append(days, DailyOccupancy{
			Date:     d,
			Occupied: occupied,
			Rate:     DailyRate(occupied, totalRooms),
		})
	}
	return days
}

func buildMonthly(reservations []*domain.Reservation, first, afterLast time.Time, totalRooms int, loc *time.Location) []MonthlyOccupancy {
	byMonth := make(map[string][]*domain.Reservation)
	for _, r := range reservations {
		key := r.CreatedAt.In(loc).Format(domain.MonthFormat)
		byMonth[key] = append(byMonth[key], r)
	}

	months := make([]MonthlyOccupancy, 0)
	for m := first; m.Before(afterLast); m = m.AddDate(0, 1, 0) {
		list := byMonth[m.Format(domain.MonthFormat)]
		sold := SoldNights(list)
		months = append(months, MonthlyOccupancy{
			Month:      m,
			SoldNights: sold,
			Rate:       MonthlyRate(sold, totalRooms, m),
			Revenue:    Revenue(list),
		})
	}
	return months
}
