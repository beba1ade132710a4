package search_rooms

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/pkg/logger"
)

func date(s string) *time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return &t
}

func seed() *memstore.Store {
	s := memstore.New()
	for _, r := range []domain.Room{
		{ID: "B1", Zone: domain.ZoneB, MaxOccupancy: 4},
		{ID: "A10", Zone: domain.ZoneA, MaxOccupancy: 8},
		{ID: "A3", Zone: domain.ZoneA, MaxOccupancy: 6},
		{ID: "C2", Zone: domain.ZoneC, MaxOccupancy: 2},
	} {
		s.AddRoom(r, nil)
	}
	return s
}

func ids(rooms []*domain.Room) []string {
	out := make([]string, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.ID)
	}
	return out
}

func TestExecute_SortsByZoneThenNumber(t *testing.T) {
	s := seed()
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), Criteria{Adults: 2})

	require.NoError(t, err)
	assert.Equal(t, []string{"A3", "A10", "B1", "C2"}, ids(resp.Rooms))
}

func TestExecute_NoAdultsReturnsEmpty(t *testing.T) {
	s := seed()
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), Criteria{Adults: 0, Children: 3})

	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_FiltersByCapacityAndZone(t *testing.T) {
	s := seed()
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), Criteria{Adults: 4, Children: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"A3", "A10"}, ids(resp.Rooms))
	for _, r := range resp.Rooms {
		assert.GreaterOrEqual(t, r.MaxOccupancy, 5)
	}

	resp, err = uc.Execute(context.Background(), Criteria{Adults: 1, Zone: "B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B1"}, ids(resp.Rooms))

	resp, err = uc.Execute(context.Background(), Criteria{Adults: 1, Zone: domain.AllZonesLabel})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 4)
}

func TestExecute_ExcludesOverlappingReservations(t *testing.T) {
	s := seed()
	s.AddReservation(domain.Reservation{RoomID: "A3", CheckIn: *date("2025-08-01"), CheckOut: *date("2025-08-03"), Status: domain.StatusConfirmed})
	s.AddReservation(domain.Reservation{RoomID: "A10", CheckIn: *date("2025-08-01"), CheckOut: *date("2025-08-03"), Status: domain.StatusCancelled})
	// выезд в день заезда не пересекается
	s.AddReservation(domain.Reservation{RoomID: "B1", CheckIn: *date("2025-07-30"), CheckOut: *date("2025-08-02"), Status: domain.StatusPending})
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), Criteria{
		Adults:   2,
		CheckIn:  date("2025-08-02"),
		CheckOut: date("2025-08-04"),
	})

	require.NoError(t, err)
	assert.True(t, resp.AvailabilityChecked)
	assert.Equal(t, []string{"A10", "B1", "C2"}, ids(resp.Rooms))
}

func TestExecute_OverlapQueryFailureIsSkipped(t *testing.T) {
	s := seed()
	s.AddReservation(domain.Reservation{RoomID: "A3", CheckIn: *date("2025-08-01"), CheckOut: *date("2025-08-03"), Status: domain.StatusConfirmed})
	s.BookedQueryErr = errors.New("connection reset")
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), Criteria{
		Adults:   2,
		CheckIn:  date("2025-08-01"),
		CheckOut: date("2025-08-02"),
	})

	require.NoError(t, err)
	assert.False(t, resp.AvailabilityChecked)
	assert.Contains(t, ids(resp.Rooms), "A3")
}

func TestExecute_InvalidCriteria(t *testing.T) {
	s := seed()
	uc := NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())

	_, err := uc.Execute(context.Background(), Criteria{Adults: 2, Zone: "Z"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), Criteria{Adults: 2, CheckIn: date("2025-08-03"), CheckOut: date("2025-08-03")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCriteria_EncodeParse(t *testing.T) {
	in := Criteria{Zone: "A", Adults: 3, Children: 1, CheckIn: date("2025-08-01"), CheckOut: date("2025-08-03")}

	q, err := url.ParseQuery(in.Encode())
	require.NoError(t, err)
	out, err := ParseCriteria(q)

	require.NoError(t, err)
	assert.Equal(t, in.Zone, out.Zone)
	assert.Equal(t, in.Adults, out.Adults)
	assert.Equal(t, in.Children, out.Children)
	assert.True(t, in.CheckIn.Equal(*out.CheckIn))
	assert.True(t, in.CheckOut.Equal(*out.CheckOut))
}

func TestParseCriteria_Errors(t *testing.T) {
	_, err := ParseCriteria(url.Values{ParamAdults: {"many"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = ParseCriteria(url.Values{ParamCheckIn: {"08/01/2025"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	c, err := ParseCriteria(url.Values{})
	require.NoError(t, err)
	assert.False(t, c.HasDates())
	assert.True(t, c.AllZones())
}
