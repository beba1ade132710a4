package export_reservations

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/internal/service/reservations"
	"github.com/m04kA/villa-booking-service/pkg/logger"
	"github.com/m04kA/villa-booking-service/pkg/metrics"
	"github.com/m04kA/villa-booking-service/pkg/xlsxexport"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func TestHandle(t *testing.T) {
	now := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	s := memstore.New()
	for _, number := range []string{"S2508010001", "S2508010002"} {
		s.AddReservation(domain.Reservation{
			Number:      number,
			RoomID:      "A1",
			CheckIn:     time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:    time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
			Nights:      1,
			BookerName:  "홍길동",
			BookerPhone: "01012345678",
			Status:      domain.StatusConfirmed,
		})
	}
	svc := reservations.NewService(s.Reservations(), s, metrics.New("test"), fixedTime{t: now}, 2, logger.NewNop())

	h := NewHandler(svc, logger.NewNop())
	h.now = func() time.Time { return now }

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/export?status=confirmed", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxexport.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reservations-20250801.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 3) // заголовок + 2 строки
}

func TestHandle_InvalidQuery(t *testing.T) {
	h := NewHandler(nil, logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations/export?stayFrom=yesterday", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
