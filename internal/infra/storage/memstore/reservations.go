package memstore

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/reservation"
)

type Reservations struct {
	s *Store
}

func (r *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.reservations {
		if existing.Number == res.Number {
			return nil, reservation.ErrDuplicateNumber
		}
	}

	r.s.nextID++
	res.ID = r.s.nextID
	res.CreatedAt = r.s.now()
	res.UpdatedAt = res.CreatedAt
	r.s.reservations = append(r.s.reservations, cloneReservation(*res))
	return res, nil
}

func (r *Reservations) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	return r.find(func(res *domain.Reservation) bool { return res.ID == id })
}

func (r *Reservations) GetByNumber(_ context.Context, number string) (*domain.Reservation, error) {
	return r.find(func(res *domain.Reservation) bool { return res.Number == number })
}

func (r *Reservations) NumberExists(ctx context.Context, number string) (bool, error) {
	_, err := r.GetByNumber(ctx, number)
	if errors.Is(err, reservation.ErrReservationNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *Reservations) GetBookedRoomIDs(_ context.Context, from, to time.Time) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.BookedQueryErr != nil {
		return nil, r.s.BookedQueryErr
	}

	seen := make(map[string]struct{})
	ids := make([]string, 0)
	for i := range r.s.reservations {
		res := &r.s.reservations[i]
		if res.IsCancelled() || !res.Overlaps(from, to) {
			continue
		}
		if _, ok := seen[res.RoomID]; ok {
			continue
		}
		seen[res.RoomID] = struct{}{}
		ids = append(ids, res.RoomID)
	}
	return ids, nil
}

func (r *Reservations) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	matched := r.match(filter)
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	start := min(int(filter.Offset), len(matched))
	matched = matched[start:]
	if filter.Limit > 0 && int(filter.Limit) < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *Reservations) Count(_ context.Context, filter domain.ReservationFilter) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.match(filter)), nil
}

func (r *Reservations) FindByBooker(_ context.Context, name, phone string) ([]*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Reservation, 0)
	for i := range r.s.reservations {
		res := r.s.reservations[i]
		if res.BookerName == name && res.BookerPhone == phone {
			c := cloneReservation(res)
			out = append(out, &c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CheckIn.After(out[j].CheckIn) })
	return out, nil
}

func (r *Reservations) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	return r.update(id, func(res *domain.Reservation) {
		res.Status = status
	})
}

func (r *Reservations) Cancel(_ context.Context, id int64, actor domain.CancelActor, at time.Time) error {
	return r.update(id, func(res *domain.Reservation) {
		res.Status = domain.StatusCancelled
		res.CancelledAt = &at
		res.CancelledBy = &actor
	})
}

func (r *Reservations) SetCheckedIn(_ context.Context, id int64, checked bool, at time.Time) error {
	return r.update(id, func(res *domain.Reservation) {
		res.CheckedIn = checked
		res.CheckedInAt = timeOrNil(checked, at)
	})
}

func (r *Reservations) SetCheckedOut(_ context.Context, id int64, checked bool, at time.Time) error {
	return r.update(id, func(res *domain.Reservation) {
		res.CheckedOut = checked
		res.CheckedOutAt = timeOrNil(checked, at)
	})
}

func (r *Reservations) find(pred func(*domain.Reservation) bool) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.reservations {
		if pred(&r.s.reservations[i]) {
			c := cloneReservation(r.s.reservations[i])
			return &c, nil
		}
	}
	return nil, reservation.ErrReservationNotFound
}

func (r *Reservations) update(id int64, fn func(*domain.Reservation)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err, ok := r.s.FailUpdateIDs[id]; ok {
		return err
	}

	for i := range r.s.reservations {
		if r.s.reservations[i].ID == id {
			fn(&r.s.reservations[i])
			r.s.reservations[i].UpdatedAt = r.s.now()
			return nil
		}
	}
	return reservation.ErrReservationNotFound
}

// match повторяет условия applyFilter postgres-репозитория
func (r *Reservations) match(f domain.ReservationFilter) []*domain.Reservation {
	out := make([]*domain.Reservation, 0)
	for i := range r.s.reservations {
		res := r.s.reservations[i]

		if f.Status != nil {
			if res.Status != *f.Status {
				continue
			}
		} else if !f.IncludeCancel && res.IsCancelled() {
			continue
		}
		if f.StayTo != nil && !res.CheckIn.Before(*f.StayTo) {
			continue
		}
		if f.StayFrom != nil && !res.CheckOut.After(*f.StayFrom) {
			continue
		}
		if f.CreatedFrom != nil && res.CreatedAt.Before(*f.CreatedFrom) {
			continue
		}
		if f.CreatedTo != nil && !res.CreatedAt.Before(*f.CreatedTo) {
			continue
		}
		if f.RoomID != nil && res.RoomID != *f.RoomID {
			continue
		}
		if f.Search != nil && *f.Search != "" && !matchesSearch(&res, *f.Search) {
			continue
		}

		c := cloneReservation(res)
		out = append(out, &c)
	}
	return out
}

func matchesSearch(res *domain.Reservation, q string) bool {
	lq := strings.ToLower(q)
	return strings.Contains(strings.ToLower(res.Number), lq) ||
		strings.Contains(strings.ToLower(res.BookerName), lq) ||
		strings.Contains(res.BookerPhone, q)
}

func timeOrNil(set bool, at time.Time) *time.Time {
	if !set {
		return nil
	}
	return &at
}
