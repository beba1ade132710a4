package memstore

import (
	"context"

	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/infra/storage/price"
)

type Prices struct {
	s *Store
}

func (p *Prices) GetAll(_ context.Context) ([]*domain.RoomPrice, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	out := make([]*domain.RoomPrice, 0, len(p.s.prices))
	for _, rp := range p.s.prices {
		c := rp
		out = append(out, &c)
	}
	sortPrices(out)
	return out, nil
}

func (p *Prices) GetByRoomID(_ context.Context, roomID string) (*domain.RoomPrice, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	rp, ok := p.s.prices[roomID]
	if !ok {
		return nil, price.ErrPriceNotFound
	}
	return &rp, nil
}

func (p *Prices) Upsert(_ context.Context, rp *domain.RoomPrice) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if err, ok := p.s.FailPriceRoomIDs[rp.RoomID]; ok {
		return err
	}

	c := *rp
	c.UpdatedAt = p.s.now()
	p.s.prices[rp.RoomID] = c
	return nil
}

func sortPrices(list []*domain.RoomPrice) {
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && domain.LessRoomID(list[j].RoomID, list[j-1].RoomID); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
}
