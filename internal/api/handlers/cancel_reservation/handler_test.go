package cancel_reservation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/pkg/logger"
	"github.com/m04kA/villa-booking-service/pkg/metrics"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newRouter() *mux.Router {
	s := memstore.New()
	s.AddReservation(domain.Reservation{
		Number:      "S2508010001",
		RoomID:      "A1",
		CheckIn:     time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2025, 8, 12, 0, 0, 0, 0, time.UTC),
		Nights:      2,
		BookerName:  "홍길동",
		BookerPhone: "01012345678",
		Status:      domain.StatusPending,
	})

	now := fixedTime{t: time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)}
	svc := reservations.NewService(s.Reservations(), s, metrics.New("test"), now, 2, logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/reservations/{number}/cancel", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)
	return r
}

func cancel(r http.Handler, number, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/reservations/"+number+"/cancel", strings.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	r := newRouter()

	rec := cancel(r, "S2508010001", `{"phone": "010-0000-0000"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = cancel(r, "S0000000000", `{"phone": "010-1234-5678"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = cancel(r, "S2508010001", `{"phone": "010-1234-5678"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.Contains(t, rec.Body.String(), `"cancelledBy":"customer"`)

	// повторная отмена
	rec = cancel(r, "S2508010001", `{"phone": "010-1234-5678"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
