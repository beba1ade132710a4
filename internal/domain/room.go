package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Zone группа номеров (отдельный корпус и ценовой уровень)
type Zone string

const (
	ZoneA Zone = "A"
	ZoneB Zone = "B"
	ZoneC Zone = "C"
	ZoneD Zone = "D"
)

// Zones все зоны в порядке отображения
var Zones = []Zone{ZoneA, ZoneB, ZoneC, ZoneD}

// IsValid true для A-D
func (z Zone) IsValid() bool {
	for _, v := range Zones {
		if z == v {
			return true
		}
	}
	return false
}

// PoolType тип бассейна в вилле
type PoolType string

const (
	PoolIndoor  PoolType = "indoor"
	PoolOutdoor PoolType = "outdoor"
	PoolNone    PoolType = "none"
)

// IsValid проверяет значение типа бассейна
func (p PoolType) IsValid() bool {
	return p == PoolIndoor || p == PoolOutdoor || p == PoolNone
}

// Room сдаваемая вилла. Справочные данные: меняются только через админку цен/контента.
type Room struct {
	ID                string // буква зоны + номер, например "A3"
	Name              string
	Zone              Zone
	Type              string
	AreaM2            float64
	StandardOccupancy int // гостей включено в базовую цену
	MaxOccupancy      int
	RoomCount         int
	BathroomCount     int
	PetFriendly       bool
	PoolType          PoolType
	Price             int64 // текущая цена за ночь
	Description       *string
	ImageURLs         []string
	UpdatedAt         time.Time
}

// Number числовая часть идентификатора ("A10" -> 10). Для нечисловых суффиксов 0.
func (r *Room) Number() int {
	return roomNumber(r.ID)
}

// Fits true, если party гостей помещается в номер
func (r *Room) Fits(party int) bool {
	return r.MaxOccupancy >= party
}

// RoomPrice цены номера по типу дня
type RoomPrice struct {
	RoomID        string
	Zone          Zone
	WeekdayPrice  int64
	FridayPrice   int64
	SaturdayPrice int64
	UpdatedAt     time.Time
}

// NightlyRate цена ночи, начинающейся в date
func (p *RoomPrice) NightlyRate(date time.Time) int64 {
	switch date.Weekday() {
	case time.Friday:
		return p.FridayPrice
	case time.Saturday:
		return p.SaturdayPrice
	default:
		return p.WeekdayPrice
	}
}

// StayRoomPrice стоимость проживания без доплат.
// Если таблица цен для номера не заполнена, используется текущая цена номера за каждую ночь.
func StayRoomPrice(room *Room, price *RoomPrice, checkIn time.Time, nights int) int64 {
	var total int64
	for i := 0; i < nights; i++ {
		if price == nil {
			total += room.Price
			continue
		}
		total += price.NightlyRate(checkIn.AddDate(0, 0, i))
	}
	return total
}

// LessRoomID порядок номеров: по букве зоны, затем по числу ("A3" < "A10" < "B1")
func LessRoomID(a, b string) bool {
	za, zb := roomZone(a), roomZone(b)
	if za != zb {
		return za < zb
	}
	na, nb := roomNumber(a), roomNumber(b)
	if na != nb {
		return na < nb
	}
	return a < b
}

// SortRooms сортирует номера на месте
func SortRooms(rooms []*Room) {
	sort.SliceStable(rooms, func(i, j int) bool {
		return LessRoomID(rooms[i].ID, rooms[j].ID)
	})
}

// ZoneOfRoomID зона по идентификатору номера
func ZoneOfRoomID(id string) Zone {
	return Zone(roomZone(id))
}

func roomZone(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1])
}

func roomNumber(id string) int {
	id = strings.TrimSpace(id)
	if len(id) < 2 {
		return 0
	}
	n, err := strconv.Atoi(id[1:])
	if err != nil {
		return 0
	}
	return n
}
