package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortRooms_ZoneThenNumber(t *testing.T) {
	rooms := []*Room{{ID: "B1"}, {ID: "A10"}, {ID: "C2"}, {ID: "A3"}}

	SortRooms(rooms)

	ids := make([]string, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"A3", "A10", "B1", "C2"}, ids)
}

func TestRoomPrice_NightlyRate(t *testing.T) {
	p := &RoomPrice{WeekdayPrice: 100, FridayPrice: 150, SaturdayPrice: 200}

	thursday := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(100), p.NightlyRate(thursday))
	assert.Equal(t, int64(150), p.NightlyRate(thursday.AddDate(0, 0, 1)))
	assert.Equal(t, int64(200), p.NightlyRate(thursday.AddDate(0, 0, 2)))
	assert.Equal(t, int64(100), p.NightlyRate(thursday.AddDate(0, 0, 3)))
}

func TestStayRoomPrice(t *testing.T) {
	room := &Room{Price: 300}
	thursday := time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC)
	price := &RoomPrice{WeekdayPrice: 100, FridayPrice: 150, SaturdayPrice: 200}

	assert.Equal(t, int64(450), StayRoomPrice(room, price, thursday, 3))
	assert.Equal(t, int64(900), StayRoomPrice(room, nil, thursday, 3))
}

func TestReservation_Overlaps(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, 8, day, 0, 0, 0, 0, time.UTC) }
	r := &Reservation{CheckIn: d(10), CheckOut: d(12)}

	assert.True(t, r.Overlaps(d(11), d(13)))
	assert.True(t, r.Overlaps(d(9), d(11)))
	assert.False(t, r.Overlaps(d(12), d(14)), "checkout day is free")
	assert.False(t, r.Overlaps(d(8), d(10)), "checkin day of other stay is free")

	assert.True(t, r.OccupiesNight(d(10)))
	assert.True(t, r.OccupiesNight(d(11)))
	assert.False(t, r.OccupiesNight(d(12)))
}

func TestReservation_CanTransitionTo(t *testing.T) {
	r := &Reservation{Status: StatusPending}
	assert.True(t, r.CanTransitionTo(StatusConfirmed))
	assert.True(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusConfirmed
	assert.False(t, r.CanTransitionTo(StatusPending))
	assert.True(t, r.CanTransitionTo(StatusCancelled))

	r.Status = StatusCancelled
	assert.False(t, r.CanTransitionTo(StatusConfirmed))
}

func TestNightsBetween(t *testing.T) {
	in := time.Date(2025, 12, 30, 15, 0, 0, 0, time.UTC)
	out := time.Date(2026, 1, 2, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, NightsBetween(in, out))
}
