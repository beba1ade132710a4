package domain

import "time"

// ReservationStatus статус бронирования: pending -> confirmed -> cancelled
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// IsValid проверяет значение статуса
func (s ReservationStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// CancelActor кто отменил бронирование
type CancelActor string

const (
	CancelledByAdmin    CancelActor = "admin"
	CancelledByCustomer CancelActor = "customer"
)

// GuestCounts состав гостей по категориям
type GuestCounts struct {
	Adults   int
	Students int
	Children int
	Infants  int
}

// Total все гости, включая младенцев
func (g GuestCounts) Total() int {
	return g.Adults + g.Students + g.Children + g.Infants
}

// Reservation одно проживание. Физически не удаляется.
type Reservation struct {
	ID           int64
	Number       string // S + YYMMDD + 4 цифры
	RoomID       string
	RoomName     string
	CheckIn      time.Time
	CheckOut     time.Time
	Nights       int
	BookerName   string
	BookerPhone  string
	BookerEmail  *string
	GuestName    *string // если проживает не тот, кто бронировал
	GuestPhone   *string
	Guests       GuestCounts
	Options      []OptionKey
	CustomerNote *string

	RoomPrice     int64
	AdditionalFee int64
	OptionsFee    int64
	TotalAmount   int64

	Status      ReservationStatus
	CancelledAt *time.Time
	CancelledBy *CancelActor

	CheckedIn    bool
	CheckedInAt  *time.Time
	CheckedOut   bool
	CheckedOutAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled true для отмененного бронирования
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// Overlaps пересекается ли [CheckIn, CheckOut) с [from, to).
// Выезд в день чужого заезда пересечением не считается.
func (r *Reservation) Overlaps(from, to time.Time) bool {
	return r.CheckIn.Before(to) && r.CheckOut.After(from)
}

// OccupiesNight занят ли номер в ночь date (CheckIn <= date < CheckOut)
func (r *Reservation) OccupiesNight(date time.Time) bool {
	d := DateOnly(date)
	return !DateOnly(r.CheckIn).After(d) && DateOnly(r.CheckOut).After(d)
}

// CanTransitionTo допустимые переходы статусов
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ReservationFilter фильтр списка бронирований в админке
type ReservationFilter struct {
	Status        *ReservationStatus
	StayFrom      *time.Time // пересечение периода проживания с [StayFrom, StayTo)
	StayTo        *time.Time
	CreatedFrom   *time.Time // created_at в [CreatedFrom, CreatedTo)
	CreatedTo     *time.Time
	RoomID        *string
	Search        *string // номер бронирования, имя или телефон
	IncludeCancel bool
	Limit         uint64 // 0 = без ограничения
	Offset        uint64
}

// NightsBetween количество ночей между датами (время суток игнорируется)
func NightsBetween(checkIn, checkOut time.Time) int {
	// Считаем в UTC, чтобы переход на летнее время не давал дробных суток
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

// DateOnly отбрасывает время, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CalendarDate календарный день t (в его локации) как полночь UTC.
// Так же хранятся даты заезда/выезда, поэтому их можно сравнивать напрямую.
func CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
