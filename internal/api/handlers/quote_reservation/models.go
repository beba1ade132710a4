package quote_reservation

import (
	"github.com/m04kA/villa-booking-service/internal/api/handlers"
	"github.com/m04kA/villa-booking-service/internal/domain"
	quoteReservation "github.com/m04kA/villa-booking-service/internal/usecase/quote_reservation"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	RoomID   string   `json:"roomId"`
	CheckIn  string   `json:"checkIn"`  // "2025-08-01"
	CheckOut string   `json:"checkOut"` // "2025-08-03"
	Adults   int      `json:"adults"`
	Students int      `json:"students"`
	Children int      `json:"children"`
	Infants  int      `json:"infants"`
	Options  []string `json:"options"`
}

// FeesResponse расчет стоимости
type FeesResponse struct {
	BasePrice     int64 `json:"basePrice"`
	AdditionalFee int64 `json:"additionalFee"`
	OptionsFee    int64 `json:"optionsFee"`
	Total         int64 `json:"total"`
	ExcessGuests  int   `json:"excessGuests"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	RoomID            string       `json:"roomId"`
	RoomName          string       `json:"roomName"`
	Nights            int          `json:"nights"`
	StandardOccupancy int          `json:"standardOccupancy"`
	MaxOccupancy      int          `json:"maxOccupancy"`
	Options           []string     `json:"options"`
	Fees              FeesResponse `json:"fees"`
	OverCapacity      bool         `json:"overCapacity"`
	Available         *bool        `json:"available,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*quoteReservation.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := handlers.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &quoteReservation.Request{
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests: domain.GuestCounts{
			Adults:   r.Adults,
			Students: r.Students,
			Children: r.Children,
			Infants:  r.Infants,
		},
		Options: r.Options,
	}, nil
}

// FromFees конвертирует расчет стоимости
func FromFees(f domain.FeeBreakdown) FeesResponse {
	return FeesResponse{
		BasePrice:     f.BasePrice,
		AdditionalFee: f.AdditionalFee,
		OptionsFee:    f.OptionsFee,
		Total:         f.Total,
		ExcessGuests:  f.ExcessGuests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteReservation.Response) *QuoteResponse {
	options := make([]string, 0, len(resp.Options))
	for _, o := range resp.Options {
		options = append(options, string(o))
	}

	return &QuoteResponse{
		RoomID:            resp.RoomID,
		RoomName:          resp.RoomName,
		Nights:            resp.Nights,
		StandardOccupancy: resp.StandardOccupancy,
		MaxOccupancy:      resp.MaxOccupancy,
		Options:           options,
		Fees:              FromFees(resp.Fees),
		OverCapacity:      resp.OverCapacity,
		Available:         resp.Available,
	}
}
