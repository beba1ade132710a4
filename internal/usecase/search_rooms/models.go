package search_rooms

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Параметры query-string, которыми лендинг передает критерии на страницу бронирования
const (
	ParamCheckIn  = "checkIn"
	ParamCheckOut = "checkOut"
	ParamAdults   = "adults"
	ParamChildren = "children"
	ParamZone     = "zone"
)

// Criteria критерии поиска свободных номеров
type Criteria struct {
	Zone     string // "전체", "" или A/B/C/D
	Adults   int
	Children int
	CheckIn  *time.Time
	CheckOut *time.Time
}

// HasDates true, когда заданы обе даты
func (c Criteria) HasDates() bool {
	return c.CheckIn != nil && c.CheckOut != nil
}

// AllZones true, когда фильтр по зоне не задан
func (c Criteria) AllZones() bool {
	return c.Zone == "" || c.Zone == domain.AllZonesLabel
}

// Encode сериализует критерии в query-string; пустые поля опускаются
func (c Criteria) Encode() string {
	q := url.Values{}
	if c.CheckIn != nil {
		q.Set(ParamCheckIn, c.CheckIn.Format(domain.DateFormat))
	}
	if c.CheckOut != nil {
		q.Set(ParamCheckOut, c.CheckOut.Format(domain.DateFormat))
	}
	if c.Adults > 0 {
		q.Set(ParamAdults, strconv.Itoa(c.Adults))
	}
	if c.Children > 0 {
		q.Set(ParamChildren, strconv.Itoa(c.Children))
	}
	if !c.AllZones() {
		q.Set(ParamZone, c.Zone)
	}
	return q.Encode()
}

// ParseCriteria разбирает критерии из query-string
func ParseCriteria(q url.Values) (Criteria, error) {
	var c Criteria
	var err error

	if c.Adults, err = parseCount(q, ParamAdults); err != nil {
		return Criteria{}, err
	}
	if c.Children, err = parseCount(q, ParamChildren); err != nil {
		return Criteria{}, err
	}
	if c.CheckIn, err = parseDate(q, ParamCheckIn); err != nil {
		return Criteria{}, err
	}
	if c.CheckOut, err = parseDate(q, ParamCheckOut); err != nil {
		return Criteria{}, err
	}
	c.Zone = q.Get(ParamZone)

	return c, nil
}

func parseCount(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidInput, key)
	}
	return n, nil
}

func parseDate(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, key)
	}
	return &d, nil
}

// Response результат поиска
type Response struct {
	Criteria Criteria
	Rooms    []*domain.Room
	// AvailabilityChecked false, если даты не заданы или проверка пересечений не удалась
	AvailabilityChecked bool
}
