package memstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/reservation"
)

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

func TestStore_DoRollsBackOnError(t *testing.T) {
	s := New()
	s.AddRoom(domain.Room{ID: "A1", Zone: domain.ZoneA, Price: 100000}, nil)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.Do(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Rooms().UpdatePrice(ctx, "A1", 200000))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	room, err := s.Rooms().GetByID(ctx, "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), room.Price)
}

func TestReservations_BookedRoomIDs(t *testing.T) {
	s := New()
	s.AddReservation(domain.Reservation{RoomID: "A1", CheckIn: day("2025-08-01"), CheckOut: day("2025-08-03"), Status: domain.StatusConfirmed})
	s.AddReservation(domain.Reservation{RoomID: "A2", CheckIn: day("2025-08-01"), CheckOut: day("2025-08-03"), Status: domain.StatusCancelled})
	s.AddReservation(domain.Reservation{RoomID: "B1", CheckIn: day("2025-07-30"), CheckOut: day("2025-08-01"), Status: domain.StatusPending})

	ids, err := s.Reservations().GetBookedRoomIDs(context.Background(), day("2025-08-01"), day("2025-08-02"))

	require.NoError(t, err)
	assert.Equal(t, []string{"A1"}, ids)
}

func TestReservations_UpdateUnknown(t *testing.T) {
	s := New()

	err := s.Reservations().UpdateStatus(context.Background(), 42, domain.StatusConfirmed)

	assert.ErrorIs(t, err, reservation.ErrReservationNotFound)
}

func TestReservations_NumberExists(t *testing.T) {
	s := New()
	s.AddReservation(domain.Reservation{Number: "S2508010007", RoomID: "A1", Status: domain.StatusPending})
	ctx := context.Background()

	exists, err := s.Reservations().NumberExists(ctx, "S2508010007")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Reservations().NumberExists(ctx, "S2508010042")
	require.NoError(t, err)
	assert.False(t, exists)
}
