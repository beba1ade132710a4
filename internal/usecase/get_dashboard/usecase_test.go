package get_dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestExecute_Dashboard(t *testing.T) {
	s := memstore.New()
	for _, id := range []string{"A1", "A2", "B1", "B2"} {
		s.AddRoom(domain.Room{ID: id, Zone: domain.ZoneOfRoomID(id)}, nil)
	}

	created := time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)
	s.AddReservation(domain.Reservation{RoomID: "A1", CheckIn: day("2025-08-01"), CheckOut: day("2025-08-03"), Nights: 2, TotalAmount: 400000, Status: domain.StatusConfirmed, CreatedAt: created})
	s.AddReservation(domain.Reservation{RoomID: "A2", CheckIn: day("2025-08-02"), CheckOut: day("2025-08-03"), Nights: 1, TotalAmount: 300000, Status: domain.StatusCancelled, CreatedAt: created})
	s.AddReservation(domain.Reservation{RoomID: "B1", CheckIn: day("2025-08-02"), CheckOut: day("2025-08-05"), Nights: 3, TotalAmount: 900000, Status: domain.StatusPending, CreatedAt: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)})

	uc := NewUseCase(s.Rooms(), s.Reservations(), fixedTime{t: time.Date(2025, 8, 2, 15, 0, 0, 0, time.UTC)}, time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), Request{From: day("2025-08-01"), To: day("2025-08-03")})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalRooms)

	require.Len(t, resp.Daily, 3)
	assert.Equal(t, 1, resp.Daily[0].Occupied)
	assert.Equal(t, 25, resp.Daily[0].Rate)
	assert.Equal(t, 2, resp.Daily[1].Occupied)
	assert.Equal(t, 50, resp.Daily[1].Rate)
	assert.Equal(t, 1, resp.Daily[2].Occupied)

	// выручка только по бронированиям, созданным в периоде
	assert.Equal(t, int64(900000), resp.Revenue)

	require.Len(t, resp.Monthly, 1)
	assert.Equal(t, 3, resp.Monthly[0].SoldNights)
	// 3 / (4 * 31) * 100 = 2.4
	assert.Equal(t, float64(2), resp.Monthly[0].Rate)

	require.Len(t, resp.CheckIns, 1)
	assert.Equal(t, "B1", resp.CheckIns[0].RoomID)
	assert.Empty(t, resp.CheckOuts)
	assert.Equal(t, 1, resp.PendingCount)
}

func TestExecute_CreatedDateInVillaTimezone(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	s := memstore.New()
	s.AddRoom(domain.Room{ID: "A1", Zone: domain.ZoneA}, nil)

	// 1 марта 08:00 по вилле, в UTC это еще 28 февраля
	s.AddReservation(domain.Reservation{RoomID: "A1", CheckIn: day("2026-03-20"), CheckOut: day("2026-03-22"), Nights: 2, TotalAmount: 100, Status: domain.StatusPending, CreatedAt: time.Date(2026, 3, 1, 8, 0, 0, 0, kst)})
	// 1 апреля 05:00 по вилле, в UTC еще 31 марта
	s.AddReservation(domain.Reservation{RoomID: "A1", CheckIn: day("2026-04-10"), CheckOut: day("2026-04-11"), Nights: 1, TotalAmount: 70, Status: domain.StatusPending, CreatedAt: time.Date(2026, 4, 1, 5, 0, 0, 0, kst)})

	uc := NewUseCase(s.Rooms(), s.Reservations(), fixedTime{t: time.Date(2026, 3, 15, 3, 0, 0, 0, time.UTC)}, kst, logger.NewNop())

	resp, err := uc.Execute(context.Background(), Request{From: day("2026-03-01"), To: day("2026-03-31")})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Revenue)
	require.Len(t, resp.Monthly, 1)
	assert.Equal(t, day("2026-03-01"), resp.Monthly[0].Month)
	assert.Equal(t, 2, resp.Monthly[0].SoldNights)
	assert.Equal(t, int64(100), resp.Monthly[0].Revenue)
}

func TestExecute_TodayInVillaTimezone(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	s := memstore.New()
	s.AddRoom(domain.Room{ID: "A1", Zone: domain.ZoneA}, nil)
	s.AddReservation(domain.Reservation{RoomID: "A1", CheckIn: day("2026-03-02"), CheckOut: day("2026-03-03"), Nights: 1, Status: domain.StatusConfirmed})

	// 1 марта 20:00 UTC = 2 марта 05:00 по вилле
	uc := NewUseCase(s.Rooms(), s.Reservations(), fixedTime{t: time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)}, kst, logger.NewNop())

	resp, err := uc.Execute(context.Background(), Request{})

	require.NoError(t, err)
	assert.Equal(t, day("2026-03-02"), resp.Today)
	require.Len(t, resp.CheckIns, 1)
}

func TestExecute_DefaultsToCurrentMonth(t *testing.T) {
	s := memstore.New()
	uc := NewUseCase(s.Rooms(), s.Reservations(), fixedTime{t: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)}, time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), Request{})

	require.NoError(t, err)
	assert.Equal(t, day("2025-02-01"), resp.From)
	assert.Equal(t, day("2025-02-28"), resp.To)
	assert.Len(t, resp.Daily, 28)
	assert.Equal(t, 0, resp.Daily[0].Rate)
}

func TestExecute_InvalidRange(t *testing.T) {
	s := memstore.New()
	uc := NewUseCase(s.Rooms(), s.Reservations(), fixedTime{t: time.Now()}, time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), Request{From: day("2025-08-05"), To: day("2025-08-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{From: day("2025-01-01"), To: day("2025-12-31")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Request{From: day("2025-01-01")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
