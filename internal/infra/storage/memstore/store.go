// Package memstore хранилище в памяти с теми же контрактами и ошибками,
// что у postgres-репозиториев. Используется в тестах usecase и сервисов.
package memstore

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Store общее состояние для всех репозиториев
type Store struct {
	mu           sync.Mutex
	rooms        map[string]domain.Room
	prices       map[string]domain.RoomPrice
	reservations []domain.Reservation
	nextID       int64
	now          func() time.Time

	// BookedQueryErr, если задан, возвращается из GetBookedRoomIDs
	BookedQueryErr error
	// FailUpdateIDs бронирования, обновление которых завершится ошибкой
	FailUpdateIDs map[int64]error
	// FailPriceRoomIDs номера, для которых Upsert цены завершится ошибкой
	FailPriceRoomIDs map[string]error
}

func New() *Store {
	return &Store{
		rooms:            make(map[string]domain.Room),
		prices:           make(map[string]domain.RoomPrice),
		now:              time.Now,
		FailUpdateIDs:    make(map[int64]error),
		FailPriceRoomIDs: make(map[string]error),
	}
}

// SetClock подменяет часы для created_at/updated_at
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// AddRoom добавляет номер (и цену, если задана)
func (s *Store) AddRoom(room domain.Room, price *domain.RoomPrice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rooms[room.ID] = cloneRoom(room)
	if price != nil {
		s.prices[room.ID] = *price
	}
}

// AddReservation добавляет бронирование как есть, присваивая ID
func (s *Store) AddReservation(res domain.Reservation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	res.ID = s.nextID
	if res.CreatedAt.IsZero() {
		res.CreatedAt = s.now()
	}
	res.UpdatedAt = res.CreatedAt
	s.reservations = append(s.reservations, cloneReservation(res))
	return res.ID
}

// Do выполняет fn; при ошибке состояние откатывается к снимку.
// Изоляции от параллельных писателей нет.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	rooms := maps.Clone(s.rooms)
	prices := maps.Clone(s.prices)
	reservations := make([]domain.Reservation, len(s.reservations))
	copy(reservations, s.reservations)
	nextID := s.nextID
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.rooms, s.prices, s.reservations, s.nextID = rooms, prices, reservations, nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

// DoSerializable то же, что Do
func (s *Store) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return s.Do(ctx, fn)
}

// DoReadOnly только чтение, откатывать нечего
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *Store) Rooms() *Rooms               { return &Rooms{s: s} }
func (s *Store) Prices() *Prices             { return &Prices{s: s} }
func (s *Store) Reservations() *Reservations { return &Reservations{s: s} }

func cloneRoom(r domain.Room) domain.Room {
	if r.ImageURLs != nil {
		r.ImageURLs = append([]string(nil), r.ImageURLs...)
	}
	return r
}

func cloneReservation(r domain.Reservation) domain.Reservation {
	if r.Options != nil {
		r.Options = append([]domain.OptionKey(nil), r.Options...)
	}
	return r
}
