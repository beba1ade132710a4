package numbers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "reservation_numbers:"

	// keyTTL номер содержит дату, поэтому множество за день нужно хранить недолго
	keyTTL = 48 * time.Hour
)

// RedisSet used-set в redis, общий для всех инстансов сервиса.
// Ключ на каждый день: reservation_numbers:YYMMDD.
type RedisSet struct {
	client redis.Cmdable
}

func NewRedisSet(client redis.Cmdable) *RedisSet {
	return &RedisSet{client: client}
}

func (s *RedisSet) Reserve(ctx context.Context, number string) (bool, error) {
	key := dayKey(number)

	added, err := s.client.SAdd(ctx, key, number).Result()
	if err != nil {
		return false, err
	}
	if added == 0 {
		return false, nil
	}

	if err := s.client.Expire(ctx, key, keyTTL).Err(); err != nil {
		return false, err
	}

	return true, nil
}

// dayKey ключ по дате из номера (S + YYMMDD + ...)
func dayKey(number string) string {
	if len(number) < 7 {
		return keyPrefix + number
	}
	return keyPrefix + number[1:7]
}
