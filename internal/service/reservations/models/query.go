package models

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// ErrInvalidQuery некорректный параметр фильтра
var ErrInvalidQuery = errors.New("invalid reservation list query")

// ParseListQuery разбирает фильтры списка из query-string:
// status, stayFrom, stayTo, createdFrom, createdTo, search, page, size
func ParseListQuery(q url.Values) (*ListRequest, error) {
	req := &ListRequest{}

	if v := strings.TrimSpace(q.Get("status")); v != "" {
		req.Status = &v
	}
	if v := strings.TrimSpace(q.Get("search")); v != "" {
		req.Search = &v
	}

	var err error
	dates := []struct {
		key string
		dst **time.Time
	}{
		{"stayFrom", &req.StayFrom},
		{"stayTo", &req.StayTo},
		{"createdFrom", &req.CreatedFrom},
		{"createdTo", &req.CreatedTo},
	}
	for _, d := range dates {
		raw := q.Get(d.key)
		if raw == "" {
			continue
		}
		t, perr := time.Parse(domain.DateFormat, raw)
		if perr != nil {
			return nil, ErrInvalidQuery
		}
		*d.dst = &t
	}

	if req.Page, err = queryInt(q, "page"); err != nil {
		return nil, err
	}
	if req.Size, err = queryInt(q, "size"); err != nil {
		return nil, err
	}

	return req, nil
}

func queryInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, ErrInvalidQuery
	}
	return n, nil
}
