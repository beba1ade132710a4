package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

var (
	ErrInvalidDate = errors.New("handlers: invalid date, expected YYYY-MM-DD")
	ErrInvalidID   = errors.New("handlers: invalid id")
)

// ParseDate разбирает дату YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// QueryDate необязательная дата из query-string; nil, если параметр пуст
func QueryDate(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// PathID положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
