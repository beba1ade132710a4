package reservations

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/memstore"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	"github.com/m04kA/villa-booking-service/pkg/logger"
	"github.com/m04kA/villa-booking-service/pkg/metrics"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func day(s string) time.Time {
	t, _ := time.Parse(domain.DateFormat, s)
	return t
}

var now = time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

func newService(s *memstore.Store, m *metrics.Metrics) *Service {
	return NewService(s.Reservations(), s, m, fixedTime{t: now}, 4, logger.NewNop())
}

func booking(number string, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{
		Number:      number,
		RoomID:      "A1",
		RoomName:    "A1 풀빌라",
		CheckIn:     day("2025-08-10"),
		CheckOut:    day("2025-08-12"),
		Nights:      2,
		BookerName:  "홍길동",
		BookerPhone: "01012345678",
		Options:     []domain.OptionKey{domain.OptionBBQ4},
		TotalAmount: 560000,
		Status:      status,
	}
}

func TestLookup(t *testing.T) {
	s := memstore.New()
	s.AddReservation(booking("S2508010001", domain.StatusPending))
	svc := newService(s, nil)

	list, err := svc.Lookup(context.Background(), "홍길동", "010-1234-5678")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "S2508010001", list[0].Number)

	list, err = svc.Lookup(context.Background(), "홍길동", "010-0000-0000")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Lookup(context.Background(), "", "01012345678")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelByCustomer(t *testing.T) {
	s := memstore.New()
	s.AddReservation(booking("S2508010001", domain.StatusConfirmed))
	m := metrics.New("test")
	svc := newService(s, m)

	_, err := svc.CancelByCustomer(context.Background(), "S2508010001", "010-9999-9999")
	assert.ErrorIs(t, err, ErrPhoneMismatch)

	resp, err := svc.CancelByCustomer(context.Background(), "S2508010001", "010-1234-5678")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancelledBy)
	assert.Equal(t, "customer", *resp.CancelledBy)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ReservationsCancelled.WithLabelValues("customer")))

	_, err = svc.CancelByCustomer(context.Background(), "S2508010001", "01012345678")
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.CancelByCustomer(context.Background(), "S0000000000", "01012345678")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancelByCustomer_AfterCheckInDate(t *testing.T) {
	s := memstore.New()
	res := booking("S2507200001", domain.StatusConfirmed)
	res.CheckIn = day("2025-07-30")
	res.CheckOut = day("2025-08-02")
	s.AddReservation(res)

	_, err := newService(s, nil).CancelByCustomer(context.Background(), "S2507200001", "01012345678")

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_Transitions(t *testing.T) {
	s := memstore.New()
	pendingID := s.AddReservation(booking("S1", domain.StatusPending))
	cancelledID := s.AddReservation(booking("S2", domain.StatusCancelled))
	svc := newService(s, nil)
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, pendingID, &models.UpdateStatusRequest{Status: "confirmed"}))
	require.NoError(t, svc.UpdateStatus(ctx, pendingID, &models.UpdateStatusRequest{Status: "confirmed"}))

	assert.ErrorIs(t, svc.UpdateStatus(ctx, pendingID, &models.UpdateStatusRequest{Status: "pending"}), ErrInvalidTransition)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, cancelledID, &models.UpdateStatusRequest{Status: "confirmed"}), ErrInvalidTransition)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, pendingID, &models.UpdateStatusRequest{Status: "done"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 999, &models.UpdateStatusRequest{Status: "confirmed"}), ErrReservationNotFound)

	require.NoError(t, svc.UpdateStatus(ctx, pendingID, &models.UpdateStatusRequest{Status: "cancelled"}))
	res, err := s.Reservations().GetByID(ctx, pendingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, res.Status)
	require.NotNil(t, res.CancelledBy)
	assert.Equal(t, domain.CancelledByAdmin, *res.CancelledBy)
}

func TestBulkUpdateStatus_IsBestEffort(t *testing.T) {
	s := memstore.New()
	a := s.AddReservation(booking("S1", domain.StatusPending))
	b := s.AddReservation(booking("S2", domain.StatusCancelled))
	c := s.AddReservation(booking("S3", domain.StatusPending))
	d := s.AddReservation(booking("S4", domain.StatusPending))
	s.FailUpdateIDs[d] = errors.New("connection reset")
	svc := newService(s, nil)

	resp, err := svc.BulkUpdateStatus(context.Background(), &models.BulkStatusRequest{
		IDs:    []int64{a, b, c, d, 404},
		Status: "confirmed",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Succeeded)
	assert.Equal(t, 3, resp.Failed)
	assert.Equal(t, []models.BulkItemResult{
		{ID: a, OK: true},
		{ID: b, OK: false, Error: "invalid_transition"},
		{ID: c, OK: true},
		{ID: d, OK: false, Error: "internal"},
		{ID: 404, OK: false, Error: "not_found"},
	}, resp.Results)

	// успешные изменения остаются
	res, err := s.Reservations().GetByID(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
}

func TestSetCheckFlags(t *testing.T) {
	s := memstore.New()
	id := s.AddReservation(booking("S1", domain.StatusConfirmed))
	cancelled := s.AddReservation(booking("S2", domain.StatusCancelled))
	svc := newService(s, nil)
	ctx := context.Background()

	resp, err := svc.SetCheckFlags(ctx, id, &models.CheckRequest{CheckedIn: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.True(t, resp.CheckedIn)
	assert.NotNil(t, resp.CheckedInAt)
	assert.False(t, resp.CheckedOut)

	resp, err = svc.SetCheckFlags(ctx, id, &models.CheckRequest{CheckedIn: ptr.Ptr(false), CheckedOut: ptr.Ptr(true)})
	require.NoError(t, err)
	assert.False(t, resp.CheckedIn)
	assert.Nil(t, resp.CheckedInAt)
	assert.True(t, resp.CheckedOut)

	_, err = svc.SetCheckFlags(ctx, cancelled, &models.CheckRequest{CheckedIn: ptr.Ptr(true)})
	assert.ErrorIs(t, err, ErrCannotCheck)

	_, err = svc.SetCheckFlags(ctx, id, &models.CheckRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_PaginatesAndFilters(t *testing.T) {
	s := memstore.New()
	for i, n := range []string{"S1", "S2", "S3"} {
		r := booking(n, domain.StatusPending)
		r.CreatedAt = now.Add(time.Duration(i) * time.Hour)
		s.AddReservation(r)
	}
	cancelled := booking("S4", domain.StatusCancelled)
	cancelled.CreatedAt = now.Add(5 * time.Hour)
	s.AddReservation(cancelled)
	svc := newService(s, nil)

	resp, err := svc.List(context.Background(), &models.ListRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "S4", resp.Items[0].Number)

	resp, err = svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("pending"), Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "S1", resp.Items[0].Number)

	_, err = svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

type readOnlyTx struct {
	calls int
	err   error
}

func (tx *readOnlyTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	if tx.err != nil {
		return tx.err
	}
	return fn(ctx)
}

func TestList_ReadsInOneReadOnlyTransaction(t *testing.T) {
	s := memstore.New()
	s.AddReservation(booking("S1", domain.StatusPending))
	tx := &readOnlyTx{}
	svc := NewService(s.Reservations(), tx, (*metrics.Metrics)(nil), fixedTime{t: now}, 4, logger.NewNop())

	resp, err := svc.List(context.Background(), &models.ListRequest{})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, tx.calls)

	tx.err = errors.New("begin: connection refused")
	_, err = svc.List(context.Background(), &models.ListRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExport(t *testing.T) {
	s := memstore.New()
	s.AddReservation(booking("S2508010001", domain.StatusConfirmed))
	svc := newService(s, nil)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &models.ListRequest{}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "S2508010001", rows[1][0])
	assert.Equal(t, "확정", rows[1][19])
}
