package models

import "github.com/m04kA/villa-booking-service/internal/domain"

// Request модели

// PriceItem цены одного номера
type PriceItem struct {
	RoomID   string `json:"roomId"`
	Weekday  int64  `json:"weekday"`
	Friday   int64  `json:"friday"`
	Saturday int64  `json:"saturday"`
}

// UpdatePricesRequest правка нескольких строк таблицы; применяется целиком или никак
type UpdatePricesRequest struct {
	Items []PriceItem `json:"items"`
}

// ZonePriceRequest цены для всей зоны; nil - среднее по зоне
type ZonePriceRequest struct {
	Weekday  *int64 `json:"weekday,omitempty"`
	Friday   *int64 `json:"friday,omitempty"`
	Saturday *int64 `json:"saturday,omitempty"`
}

// Response модели

// RoomPriceResponse строка таблицы цен
type RoomPriceResponse struct {
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	Zone     string `json:"zone"`
	Weekday  int64  `json:"weekday"`
	Friday   int64  `json:"friday"`
	Saturday int64  `json:"saturday"`
}

// ZoneAverageResponse средние цены зоны, округленные до целого
type ZoneAverageResponse struct {
	Zone      string `json:"zone"`
	RoomCount int    `json:"roomCount"`
	Weekday   int64  `json:"weekday"`
	Friday    int64  `json:"friday"`
	Saturday  int64  `json:"saturday"`
}

// PriceTableResponse таблица цен и средние по зонам
type PriceTableResponse struct {
	Rooms []RoomPriceResponse   `json:"rooms"`
	Zones []ZoneAverageResponse `json:"zones"`
}

// FromDomainPrice строка таблицы
func FromDomainPrice(room *domain.Room, p *domain.RoomPrice) RoomPriceResponse {
	return RoomPriceResponse{
		RoomID:   room.ID,
		RoomName: room.Name,
		Zone:     string(room.Zone),
		Weekday:  p.WeekdayPrice,
		Friday:   p.FridayPrice,
		Saturday: p.SaturdayPrice,
	}
}
