package room

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func roomRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	updated := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = $1")).
		WithArgs("A3").
		WillReturnRows(roomRows().AddRow(
			"A3", "A3 오션뷰", "A", "duplex", 66.0, 4, 6, 2, 1, true, "private", int64(250000),
			"설명", "{/uploads/a3-1.jpg,/uploads/a3-2.jpg}", updated,
		))

	room, err := repo.GetByID(context.Background(), "A3")

	require.NoError(t, err)
	assert.Equal(t, "A3", room.ID)
	assert.Equal(t, domain.ZoneA, room.Zone)
	assert.Equal(t, 6, room.MaxOccupancy)
	assert.Equal(t, int64(250000), room.Price)
	assert.Equal(t, []string{"/uploads/a3-1.jpg", "/uploads/a3-2.jpg"}, room.ImageURLs)
	assert.Equal(t, updated, room.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rooms WHERE id = $1")).
		WithArgs("Z9").
		WillReturnRows(roomRows())

	_, err := repo.GetByID(context.Background(), "Z9")

	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Count(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM rooms")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(18))

	total, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 18, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePrice(t *testing.T) {
	t.Run("обновлено", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET price = $1, updated_at = NOW() WHERE id = $2")).
			WithArgs(int64(230000), "B1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePrice(context.Background(), "B1", 230000)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("номер не найден", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET price")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePrice(context.Background(), "Z9", 230000)

		assert.ErrorIs(t, err, ErrRoomNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
