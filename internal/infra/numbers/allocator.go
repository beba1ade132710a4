package numbers

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// UsedSet множество уже выданных номеров.
// Reserve атомарно добавляет номер и возвращает false, если он уже был.
type UsedSet interface {
	Reserve(ctx context.Context, number string) (bool, error)
}

// StoredNumbers проверка по уже сохраненным бронированиям.
// Нужна, когда UsedSet живет в памяти и пуст после рестарта.
type StoredNumbers interface {
	NumberExists(ctx context.Context, number string) (bool, error)
}

// Allocator выдает номера вида S + YYMMDD + 4 случайные цифры.
// Уникальность best-effort: проверяется только по UsedSet, не глобально.
type Allocator struct {
	set      UsedSet
	stored   StoredNumbers
	now      func() time.Time
	intn     func(n int) int
	attempts int
}

func NewAllocator(set UsedSet) *Allocator {
	return &Allocator{
		set:      set,
		now:      time.Now,
		intn:     rand.IntN,
		attempts: domain.ReservationNumberAttempts,
	}
}

// In дата в номере берется в часовом поясе loc
func (a *Allocator) In(loc *time.Location) *Allocator {
	a.now = func() time.Time { return time.Now().In(loc) }
	return a
}

// CheckStored дополнительно отбрасывает номера, которые уже есть в хранилище бронирований
func (a *Allocator) CheckStored(stored StoredNumbers) *Allocator {
	a.stored = stored
	return a
}

// Next подбирает свободный номер
func (a *Allocator) Next(ctx context.Context) (string, error) {
	day := a.now().Format("060102")

	for i := 0; i < a.attempts; i++ {
		number := fmt.Sprintf("%s%s%04d", domain.ReservationNumberPrefix, day, a.intn(10000))

		ok, err := a.set.Reserve(ctx, number)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUsedSet, err)
		}
		if !ok {
			continue
		}

		if a.stored != nil {
			exists, err := a.stored.NumberExists(ctx, number)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrStoredCheck, err)
			}
			if exists {
				continue
			}
		}

		return number, nil
	}

	return "", ErrExhausted
}
