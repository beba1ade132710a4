package create_reservation

import (
	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/domain"
	"github.com/m04kA/villa-booking-service/internal/service/reservations/models"
	createReservation "github.com/m04kA/villa-booking-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID          string   `json:"roomId"`
	CheckIn         string   `json:"checkIn"`  // "2025-08-01"
	CheckOut        string   `json:"checkOut"` // "2025-08-03"
	BookerName      string   `json:"bookerName"`
	BookerPhone     string   `json:"bookerPhone"`
	BookerEmail     *string  `json:"bookerEmail,omitempty"`
	GuestName       *string  `json:"guestName,omitempty"`
	GuestPhone      *string  `json:"guestPhone,omitempty"`
	Adults          int      `json:"adults"`
	Students        int      `json:"students"`
	Children        int      `json:"children"`
	Infants         int      `json:"infants"`
	Options         []string `json:"options"`
	CustomerRequest *string  `json:"customerRequest,omitempty"`
	Agreed          bool     `json:"agreed"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation  models.ReservationResponse `json:"reservation"`
	ExcessGuests int                        `json:"excessGuests"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RoomID:      r.RoomID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		BookerName:  r.BookerName,
		BookerPhone: r.BookerPhone,
		BookerEmail: r.BookerEmail,
		GuestName:   r.GuestName,
		GuestPhone:  r.GuestPhone,
		Guests: domain.GuestCounts{
			Adults:   r.Adults,
			Students: r.Students,
			Children: r.Children,
			Infants:  r.Infants,
		},
		Options:      r.Options,
		CustomerNote: r.CustomerRequest,
		Agreed:       r.Agreed,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation:  models.FromDomainReservation(resp.Reservation),
		ExcessGuests: resp.Fees.ExcessGuests,
	}
}
