package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/pkg/dbmetrics"
	"github.com/m04kA/villa-booking-service/pkg/psqlbuilder"
)

const table = "reservations"

// uniqueViolation код ошибки PostgreSQL unique_violation
const uniqueViolation = "23505"

var columns = []string{
	"id",
	"number",
	"room_id",
	"room_name",
	"check_in",
	"check_out",
	"nights",
	"booker_name",
	"booker_phone",
	"booker_email",
	"guest_name",
	"guest_phone",
	"adults",
	"students",
	"children",
	"infants",
	"options",
	"customer_request",
	"room_price",
	"additional_fee",
	"options_fee",
	"total_amount",
	"status",
	"cancelled_at",
	"cancelled_by",
	"checked_in",
	"checked_in_at",
	"checked_out",
	"checked_out_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Номер бронирования уникален на уровне БД; конфликт возвращается как ErrDuplicateNumber.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var cancelledBy *string
	if res.CancelledBy != nil {
		v := string(*res.CancelledBy)
		cancelledBy = &v
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"number",
			"room_id",
			"room_name",
			"check_in",
			"check_out",
			"nights",
			"booker_name",
			"booker_phone",
			"booker_email",
			"guest_name",
			"guest_phone",
			"adults",
			"students",
			"children",
			"infants",
			"options",
			"customer_request",
			"room_price",
			"additional_fee",
			"options_fee",
			"total_amount",
			"status",
			"cancelled_by",
		).
		Values(
			res.Number,
			res.RoomID,
			res.RoomName,
			res.CheckIn,
			res.CheckOut,
			res.Nights,
			res.BookerName,
			res.BookerPhone,
			res.BookerEmail,
			res.GuestName,
			res.GuestPhone,
			res.Guests.Adults,
			res.Guests.Students,
			res.Guests.Children,
			res.Guests.Infants,
			pq.Array(optionStrings(res.Options)),
			res.CustomerNote,
			res.RoomPrice,
			res.AdditionalFee,
			res.OptionsFee,
			res.TotalAmount,
			res.Status,
			cancelledBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByNumber получает бронирование по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByNumber", squirrel.Eq{"number": number})
}

// NumberExists проверяет, занят ли номер бронирования
func (r *Repository) NumberExists(ctx context.Context, number string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"number": number}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: NumberExists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: NumberExists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// GetBookedRoomIDs возвращает номера, занятые неотмененными бронированиями,
// пересекающимися с [from, to)
func (r *Repository) GetBookedRoomIDs(ctx context.Context, from, to time.Time) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT room_id").
		From(table).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"check_in": to}).
		Where(squirrel.Gt{"check_out": from}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedRoomIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedRoomIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: GetBookedRoomIDs - scan room_id: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedRoomIDs - rows error: %v", ErrScanRow, err)
	}

	return ids, nil
}

// List получает бронирования по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From(table), filter).
		OrderBy("created_at DESC", "id DESC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Count количество бронирований по фильтру (Limit/Offset игнорируются)
func (r *Repository) Count(ctx context.Context, filter domain.ReservationFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From(table), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan: %v", ErrScanRow, err)
	}

	return total, nil
}

// FindByBooker ищет бронирования по имени и телефону бронировавшего.
// Пустой результат - нормальная ситуация.
func (r *Repository) FindByBooker(ctx context.Context, name, phone string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"booker_name": name, "booker_phone": phone}).
		OrderBy("check_in DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByBooker - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByBooker - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	return r.update(ctx, "UpdateStatus", id, map[string]interface{}{
		"status": status,
	})
}

// Cancel отменяет бронирование, сохраняя время и инициатора отмены
func (r *Repository) Cancel(ctx context.Context, id int64, actor domain.CancelActor, at time.Time) error {
	return r.update(ctx, "Cancel", id, map[string]interface{}{
		"status":       domain.StatusCancelled,
		"cancelled_at": at,
		"cancelled_by": string(actor),
	})
}

// SetCheckedIn выставляет или снимает отметку о заезде.
// При снятии время заезда очищается.
func (r *Repository) SetCheckedIn(ctx context.Context, id int64, checked bool, at time.Time) error {
	return r.update(ctx, "SetCheckedIn", id, map[string]interface{}{
		"checked_in":    checked,
		"checked_in_at": timeOrNil(checked, at),
	})
}

// SetCheckedOut выставляет или снимает отметку о выезде
func (r *Repository) SetCheckedOut(ctx context.Context, id int64, checked bool, at time.Time) error {
	return r.update(ctx, "SetCheckedOut", id, map[string]interface{}{
		"checked_out":    checked,
		"checked_out_at": timeOrNil(checked, at),
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, values map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	values["updated_at"] = squirrel.Expr("NOW()")

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return res, nil
}

// applyFilter добавляет условия фильтра к запросу
func applyFilter(b squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancel {
		b = b.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	// Пересечение периода проживания
	if filter.StayTo != nil {
		b = b.Where(squirrel.Lt{"check_in": *filter.StayTo})
	}
	if filter.StayFrom != nil {
		b = b.Where(squirrel.Gt{"check_out": *filter.StayFrom})
	}

	// Период создания (выручка считается по дате бронирования)
	if filter.CreatedFrom != nil {
		b = b.Where(squirrel.GtOrEq{"created_at": *filter.CreatedFrom})
	}
	if filter.CreatedTo != nil {
		b = b.Where(squirrel.Lt{"created_at": *filter.CreatedTo})
	}

	if filter.RoomID != nil {
		b = b.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		b = b.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"booker_name": pattern},
			squirrel.Like{"booker_phone": pattern},
		})
	}

	return b
}

// likeEscaper экранирует спецсимволы LIKE; в PostgreSQL escape-символ по умолчанию - обратный слеш
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                  domain.Reservation
		options              pq.StringArray
		cancelledBy          sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&res.ID,
		&res.Number,
		&res.RoomID,
		&res.RoomName,
		&res.CheckIn,
		&res.CheckOut,
		&res.Nights,
		&res.BookerName,
		&res.BookerPhone,
		&res.BookerEmail,
		&res.GuestName,
		&res.GuestPhone,
		&res.Guests.Adults,
		&res.Guests.Students,
		&res.Guests.Children,
		&res.Guests.Infants,
		&options,
		&res.CustomerNote,
		&res.RoomPrice,
		&res.AdditionalFee,
		&res.OptionsFee,
		&res.TotalAmount,
		&res.Status,
		&res.CancelledAt,
		&cancelledBy,
		&res.CheckedIn,
		&res.CheckedInAt,
		&res.CheckedOut,
		&res.CheckedOutAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Options = make([]domain.OptionKey, len(options))
	for i, o := range options {
		res.Options[i] = domain.OptionKey(o)
	}
	if cancelledBy.Valid {
		actor := domain.CancelActor(cancelledBy.String)
		res.CancelledBy = &actor
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func optionStrings(keys []domain.OptionKey) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = string(k)
	}
	return out
}

func timeOrNil(set bool, at time.Time) interface{} {
	if !set {
		return nil
	}
	return at
}
