package models

import (
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// UpdateRoomRequest контентные поля номера. Цена и вместимость здесь не меняются.
type UpdateRoomRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description *string  `json:"description,omitempty"`
	ImageURLs   []string `json:"imageUrls"`
	PetFriendly bool     `json:"petFriendly"`
	PoolType    string   `json:"poolType"`
}

// RoomResponse номер для сайта и админки
type RoomResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Zone              string    `json:"zone"`
	Type              string    `json:"type"`
	AreaM2            float64   `json:"areaM2"`
	StandardOccupancy int       `json:"standardOccupancy"`
	MaxOccupancy      int       `json:"maxOccupancy"`
	RoomCount         int       `json:"roomCount"`
	BathroomCount     int       `json:"bathroomCount"`
	PetFriendly       bool      `json:"petFriendly"`
	PoolType          string    `json:"poolType"`
	Price             int64     `json:"price"`
	Description       *string   `json:"description,omitempty"`
	ImageURLs         []string  `json:"imageUrls"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// FromDomainRoom конвертирует доменную модель в ответ
func FromDomainRoom(r *domain.Room) RoomResponse {
	images := r.ImageURLs
	if images == nil {
		images = []string{}
	}
	return RoomResponse{
		ID:                r.ID,
		Name:              r.Name,
		Zone:              string(r.Zone),
		Type:              r.Type,
		AreaM2:            r.AreaM2,
		StandardOccupancy: r.StandardOccupancy,
		MaxOccupancy:      r.MaxOccupancy,
		RoomCount:         r.RoomCount,
		BathroomCount:     r.BathroomCount,
		PetFriendly:       r.PetFriendly,
		PoolType:          string(r.PoolType),
		Price:             r.Price,
		Description:       r.Description,
		ImageURLs:         images,
		UpdatedAt:         r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список номеров
func FromDomainRoomList(list []*domain.Room) []RoomResponse {
	out := make([]RoomResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainRoom(r))
	}
	return out
}
