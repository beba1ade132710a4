package prices

import (
	"math"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// ZoneAverage средние цены номеров зоны
type ZoneAverage struct {
	Zone      domain.Zone
	RoomCount int
	Weekday   int64
	Friday    int64
	Saturday  int64
}

// ZoneAverages среднее арифметическое цен по каждой зоне, округленное до целого.
// Зоны без номеров не возвращаются.
func ZoneAverages(list []*domain.RoomPrice) map[domain.Zone]ZoneAverage {
	type sums struct {
		n                          int
		weekday, friday, saturday int64
	}

	acc := make(map[domain.Zone]*sums)
	for _, p := range list {
		s, ok := acc[p.Zone]
		if !ok {
			s = &sums{}
			acc[p.Zone] = s
		}
		s.n++
		s.weekday += p.WeekdayPrice
		s.friday += p.FridayPrice
		s.saturday += p.SaturdayPrice
	}

	out := make(map[domain.Zone]ZoneAverage, len(acc))
	for zone, s := range acc {
		out[zone] = ZoneAverage{
			Zone:      zone,
			RoomCount: s.n,
			Weekday:   roundMean(s.weekday, s.n),
			Friday:    roundMean(s.friday, s.n),
			Saturday:  roundMean(s.saturday, s.n),
		}
	}
	return out
}

func roundMean(sum int64, n int) int64 {
	return int64(math.Round(float64(sum) / float64(n)))
}
