package price

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/dbmetrics"
	"github.com/m04kA/villa-booking-service/pkg/psqlbuilder"
)

const table = "room_prices"

var columns = []string{
	"room_id",
	"zone",
	"weekday_price",
	"friday_price",
	"saturday_price",
	"updated_at",
}

// Repository таблица цен номеров по типам дней
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll все строки таблицы цен
func (r *Repository) GetAll(ctx context.Context) ([]*domain.RoomPrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("zone ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]*domain.RoomPrice, 0)
	for rows.Next() {
		p, err := scanPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return prices, nil
}

// GetByRoomID цены конкретного номера
func (r *Repository) GetByRoomID(ctx context.Context, roomID string) (*domain.RoomPrice, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"room_id": roomID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPrice(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPriceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomID - scan price: %v", ErrScanRow, err)
	}

	return p, nil
}

// Upsert создает или перезаписывает цены номера (last write wins)
func (r *Repository) Upsert(ctx context.Context, p *domain.RoomPrice) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("room_id", "zone", "weekday_price", "friday_price", "saturday_price").
		Values(p.RoomID, p.Zone, p.WeekdayPrice, p.FridayPrice, p.SaturdayPrice).
		Suffix(`ON CONFLICT (room_id) DO UPDATE SET
			weekday_price = EXCLUDED.weekday_price,
			friday_price = EXCLUDED.friday_price,
			saturday_price = EXCLUDED.saturday_price,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPrice(row rowScanner) (*domain.RoomPrice, error) {
	var (
		p         domain.RoomPrice
		updatedAt sql.NullTime
	)

	if err := row.Scan(
		&p.RoomID,
		&p.Zone,
		&p.WeekdayPrice,
		&p.FridayPrice,
		&p.SaturdayPrice,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
