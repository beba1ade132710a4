package prices

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/internal/service/prices/models"
	"github.com/m04kA/villa-booking-service/pkg/logger"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

func seed() *memstore.Store {
	s := memstore.New()
	s.AddRoom(domain.Room{ID: "A1", Name: "A1", Zone: domain.ZoneA, Price: 200000},
		&domain.RoomPrice{RoomID: "A1", Zone: domain.ZoneA, WeekdayPrice: 200000, FridayPrice: 250000, SaturdayPrice: 300000})
	s.AddRoom(domain.Room{ID: "A10", Name: "A10", Zone: domain.ZoneA, Price: 210000},
		&domain.RoomPrice{RoomID: "A10", Zone: domain.ZoneA, WeekdayPrice: 210000, FridayPrice: 255000, SaturdayPrice: 305000})
	s.AddRoom(domain.Room{ID: "A2", Name: "A2", Zone: domain.ZoneA, Price: 205000},
		&domain.RoomPrice{RoomID: "A2", Zone: domain.ZoneA, WeekdayPrice: 205000, FridayPrice: 251000, SaturdayPrice: 300001})
	// без строки цен
	s.AddRoom(domain.Room{ID: "B1", Name: "B1", Zone: domain.ZoneB, Price: 150000}, nil)
	return s
}

func newService(s *memstore.Store) *Service {
	return NewService(s.Rooms(), s.Prices(), s, logger.NewNop())
}

func TestZoneAverages(t *testing.T) {
	avg := ZoneAverages([]*domain.RoomPrice{
		{Zone: domain.ZoneA, WeekdayPrice: 100, FridayPrice: 100, SaturdayPrice: 101},
		{Zone: domain.ZoneA, WeekdayPrice: 101, FridayPrice: 100, SaturdayPrice: 102},
		{Zone: domain.ZoneB, WeekdayPrice: 7, FridayPrice: 8, SaturdayPrice: 9},
	})

	require.Len(t, avg, 2)
	a := avg[domain.ZoneA]
	assert.Equal(t, 2, a.RoomCount)
	assert.Equal(t, int64(101), a.Weekday) // 100.5 -> 101
	assert.Equal(t, int64(100), a.Friday)
	assert.Equal(t, int64(102), a.Saturday) // 101.5 -> 102
	assert.Equal(t, int64(7), avg[domain.ZoneB].Weekday)

	_, ok := avg[domain.ZoneC]
	assert.False(t, ok)
}

func TestGetTable(t *testing.T) {
	svc := newService(seed())

	table, err := svc.GetTable(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(table.Rooms))
	for _, r := range table.Rooms {
		ids = append(ids, r.RoomID)
	}
	assert.Equal(t, []string{"A1", "A2", "A10", "B1"}, ids)

	// B1 без таблицы цен: текущая цена на все дни
	b1 := table.Rooms[3]
	assert.Equal(t, int64(150000), b1.Weekday)
	assert.Equal(t, int64(150000), b1.Saturday)

	require.Len(t, table.Zones, 2)
	assert.Equal(t, "A", table.Zones[0].Zone)
	assert.Equal(t, int64(205000), table.Zones[0].Weekday)
	assert.Equal(t, int64(252000), table.Zones[0].Friday)
	assert.Equal(t, int64(301667), table.Zones[0].Saturday)
	assert.Equal(t, "B", table.Zones[1].Zone)
}

func TestUpdatePrices(t *testing.T) {
	s := seed()
	svc := newService(s)

	_, err := svc.UpdatePrices(context.Background(), &models.UpdatePricesRequest{Items: []models.PriceItem{
		{RoomID: "A1", Weekday: 220000, Friday: 260000, Saturday: 320000},
		{RoomID: "B1", Weekday: 160000, Friday: 170000, Saturday: 180000},
	}})
	require.NoError(t, err)

	a1, err := s.Prices().GetByRoomID(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(320000), a1.SaturdayPrice)

	b1, err := s.Rooms().GetByID(context.Background(), "B1")
	require.NoError(t, err)
	assert.Equal(t, int64(160000), b1.Price)
}

func TestUpdatePrices_RollsBackWholeBatch(t *testing.T) {
	s := seed()
	s.FailPriceRoomIDs["A2"] = errors.New("disk full")
	svc := newService(s)

	_, err := svc.UpdatePrices(context.Background(), &models.UpdatePricesRequest{Items: []models.PriceItem{
		{RoomID: "A1", Weekday: 1, Friday: 1, Saturday: 1},
		{RoomID: "A2", Weekday: 1, Friday: 1, Saturday: 1},
	}})
	require.ErrorIs(t, err, ErrInternal)

	a1, err := s.Prices().GetByRoomID(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(200000), a1.WeekdayPrice)

	room, err := s.Rooms().GetByID(context.Background(), "A1")
	require.NoError(t, err)
	assert.Equal(t, int64(200000), room.Price)
}

func TestUpdatePrices_Validation(t *testing.T) {
	svc := newService(seed())

	_, err := svc.UpdatePrices(context.Background(), &models.UpdatePricesRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdatePrices(context.Background(), &models.UpdatePricesRequest{Items: []models.PriceItem{
		{RoomID: "A1", Weekday: 0, Friday: 1, Saturday: 1},
	}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdatePrices(context.Background(), &models.UpdatePricesRequest{Items: []models.PriceItem{
		{RoomID: "Z9", Weekday: 1, Friday: 1, Saturday: 1},
	}})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestApplyZonePrice(t *testing.T) {
	s := seed()
	svc := newService(s)

	// суббота не задана: берется среднее по зоне
	table, err := svc.ApplyZonePrice(context.Background(), domain.ZoneA, &models.ZonePriceRequest{
		Weekday: ptr.Ptr(int64(230000)),
		Friday:  ptr.Ptr(int64(260000)),
	})
	require.NoError(t, err)

	for _, row := range table.Rooms {
		if row.Zone != "A" {
			assert.Equal(t, int64(150000), row.Weekday)
			continue
		}
		assert.Equal(t, int64(230000), row.Weekday, row.RoomID)
		assert.Equal(t, int64(260000), row.Friday, row.RoomID)
		assert.Equal(t, int64(301667), row.Saturday, row.RoomID)
	}
}

func TestApplyZonePrice_Errors(t *testing.T) {
	svc := newService(seed())

	_, err := svc.ApplyZonePrice(context.Background(), domain.Zone("X"), &models.ZonePriceRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ApplyZonePrice(context.Background(), domain.ZoneD, &models.ZonePriceRequest{})
	assert.ErrorIs(t, err, ErrZoneEmpty)
}
