package reservation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/ptr"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetBookedRoomIDs(t *testing.T) {
	repo, mock := newMockRepo(t)
	from := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 2)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT DISTINCT room_id FROM reservations WHERE status <> $1 AND check_in < $2 AND check_out > $3",
	)).
		WithArgs("cancelled", to, from).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}).AddRow("A3").AddRow("B1"))

	ids, err := repo.GetBookedRoomIDs(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, []string{"A3", "B1"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateNumber(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Reservation{
		Number: "S2508010001",
		RoomID: "A1",
		Status: domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrDuplicateNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 42, domain.CancelledByCustomer, time.Now())

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NumberExists(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM reservations WHERE number = $1 LIMIT 1")).
		WithArgs("S2508010001").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.NumberExists(context.Background(), "S2508010001")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_Count_SearchEscapesWildcards(t *testing.T) {
	repo, mock := newMockRepo(t)
	pattern := `%kim\_50\%%`

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM reservations WHERE (number ILIKE $1 OR booker_name ILIKE $2 OR booker_phone LIKE $3)",
	)).
		WithArgs(pattern, pattern, pattern).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	total, err := repo.Count(context.Background(), domain.ReservationFilter{
		IncludeCancel: true,
		Search:        ptr.Ptr("kim_50%"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `c:\\dir`, escapeLike(`c:\dir`))
	assert.Equal(t, "홍길동", escapeLike("홍길동"))
}
