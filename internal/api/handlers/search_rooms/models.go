package search_rooms

import (
	roomModels "github.com/m04kA/villa-booking-service/internal/service/rooms/models"
	searchRooms "github.com/m04kA/villa-booking-service/internal/usecase/search_rooms"
)

// SearchResponse HTTP response model
type SearchResponse struct {
	// Query критерии в виде query-string для перехода на страницу бронирования
	Query               string                    `json:"query"`
	Rooms               []roomModels.RoomResponse `json:"rooms"`
	AvailabilityChecked bool                      `json:"availabilityChecked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchResponse {
	return &SearchResponse{
		Query:               resp.Criteria.Encode(),
		Rooms:               roomModels.FromDomainRoomList(resp.Rooms),
		AvailabilityChecked: resp.AvailabilityChecked,
	}
}
