package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/dbmetrics"
	"github.com/m04kA/villa-booking-service/pkg/psqlbuilder"
)

const table = "rooms"

var columns = []string{
	"id",
	"name",
	"zone",
	"type",
	"area_m2",
	"standard_occupancy",
	"max_occupancy",
	"room_count",
	"bathroom_count",
	"pet_friendly",
	"pool_type",
	"price",
	"description",
	"image_urls",
	"updated_at",
}

// Repository репозиторий номеров (справочные данные)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все номера. Порядок зона/номер наводится в сервисах через domain.SortRooms,
// т.к. строковая сортировка в БД дала бы "A10" < "A3".
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Room, error) {
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

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetByID получает номер по идентификатору ("A3")
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// Count общее количество номеров (знаменатель загрузки)
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update обновляет контентные поля номера. Вместимость и зона здесь не меняются.
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", room.Name).
		Set("type", room.Type).
		Set("area_m2", room.AreaM2).
		Set("room_count", room.RoomCount).
		Set("bathroom_count", room.BathroomCount).
		Set("pet_friendly", room.PetFriendly).
		Set("pool_type", room.PoolType).
		Set("description", room.Description).
		Set("image_urls", pq.Array(room.ImageURLs)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Update", query, args)
}

// UpdatePrice обновляет текущую цену номера
func (r *Repository) UpdatePrice(ctx context.Context, id string, price int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("price", price).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdatePrice - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdatePrice", query, args)
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room      domain.Room
		images    pq.StringArray
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Zone,
		&room.Type,
		&room.AreaM2,
		&room.StandardOccupancy,
		&room.MaxOccupancy,
		&room.RoomCount,
		&room.BathroomCount,
		&room.PetFriendly,
		&room.PoolType,
		&room.Price,
		&room.Description,
		&images,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.ImageURLs = []string(images)
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
