package search_rooms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	searchRooms "github.com/m04kA/villa-booking-service/internal/usecase/search_rooms"
	"github.com/m04kA/villa-booking-service/pkg/logger"
)

func newHandler() *Handler {
	s := memstore.New()
	s.AddRoom(domain.Room{ID: "A10", Zone: domain.ZoneA, MaxOccupancy: 4}, nil)
	s.AddRoom(domain.Room{ID: "A3", Zone: domain.ZoneA, MaxOccupancy: 6}, nil)
	s.AddRoom(domain.Room{ID: "B1", Zone: domain.ZoneB, MaxOccupancy: 8}, nil)

	uc := searchRooms.NewUseCase(s.Rooms(), s.Reservations(), logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func get(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/available?"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := get(newHandler(), "adults=4&children=1&zone=A&checkIn=2025-08-10&checkOut=2025-08-12")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "A3", resp.Rooms[0].ID)
	assert.True(t, resp.AvailabilityChecked)
	assert.Contains(t, resp.Query, "checkIn=2025-08-10")
	assert.Contains(t, resp.Query, "zone=A")
}

func TestHandle_BadQuery(t *testing.T) {
	h := newHandler()

	assert.Equal(t, http.StatusBadRequest, get(h, "adults=two").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "adults=2&checkIn=2025-08-12&checkOut=2025-08-10").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "adults=2&zone=Q").Code)
}
