package memstore

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/room"
)

type Rooms struct {
	s *Store
}

func (r *Rooms) GetAll(_ context.Context) ([]*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*domain.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		c := cloneRoom(room)
		out = append(out, &c)
	}
	domain.SortRooms(out)
	return out, nil
}

func (r *Rooms) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	found, ok := r.s.rooms[id]
	if !ok {
		return nil, room.ErrRoomNotFound
	}
	c := cloneRoom(found)
	return &c, nil
}

func (r *Rooms) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.rooms), nil
}

// Update меняет контентные поля; цена и вместимость не трогаются
func (r *Rooms) Update(_ context.Context, upd *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.rooms[upd.ID]
	if !ok {
		return room.ErrRoomNotFound
	}
	cur.Name = upd.Name
	cur.Type = upd.Type
	cur.Description = upd.Description
	cur.ImageURLs = append([]string(nil), upd.ImageURLs...)
	cur.PetFriendly = upd.PetFriendly
	cur.PoolType = upd.PoolType
	cur.UpdatedAt = r.s.now()
	r.s.rooms[upd.ID] = cur
	return nil
}

func (r *Rooms) UpdatePrice(_ context.Context, id string, price int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.rooms[id]
	if !ok {
		return room.ErrRoomNotFound
	}
	cur.Price = price
	cur.UpdatedAt = r.s.now()
	r.s.rooms[id] = cur
	return nil
}
