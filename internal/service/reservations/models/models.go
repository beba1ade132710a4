package models

import (
	"errors"
	"time"

	"github.com/m04kA/villa-booking-service/internal/domain"
)

// Размер страницы списка в админке
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListRequest фильтры списка бронирований
type ListRequest struct {
	Status      *string
	StayFrom    *time.Time // даты проживания, обе включительно
	StayTo      *time.Time
	CreatedFrom *time.Time // даты бронирования, обе включительно
	CreatedTo   *time.Time
	Search      *string
	Page        int // с 1
	Size        int
}

// Normalize подставляет значения пагинации по умолчанию
func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}
}

// ToDomainFilter конвертирует request в domain фильтр без пагинации.
// Конечные даты включительные, в фильтре границы полуоткрытые.
func (r *ListRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		StayFrom:    r.StayFrom,
		StayTo:      nextDay(r.StayTo),
		CreatedFrom: r.CreatedFrom,
		CreatedTo:   nextDay(r.CreatedTo),
		Search:      r.Search,
	}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	} else {
		// в админке по умолчанию видны и отмененные
		filter.IncludeCancel = true
	}

	return filter, nil
}

func nextDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := t.AddDate(0, 0, 1)
	return &n
}

// UpdateStatusRequest смена статуса администратором
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BulkStatusRequest массовая смена статуса
type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Status string  `json:"status"`
}

// CheckRequest отметки заезда/выезда; nil - не менять
type CheckRequest struct {
	CheckedIn  *bool `json:"checkedIn,omitempty"`
	CheckedOut *bool `json:"checkedOut,omitempty"`
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID            int64    `json:"id"`
	Number        string   `json:"number"`
	RoomID        string   `json:"roomId"`
	RoomName      string   `json:"roomName"`
	CheckIn       string   `json:"checkIn"`  // "2025-08-01"
	CheckOut      string   `json:"checkOut"` // "2025-08-03"
	Nights        int      `json:"nights"`
	BookerName    string   `json:"bookerName"`
	BookerPhone   string   `json:"bookerPhone"`
	BookerEmail   *string  `json:"bookerEmail,omitempty"`
	GuestName     *string  `json:"guestName,omitempty"`
	GuestPhone    *string  `json:"guestPhone,omitempty"`
	Adults        int      `json:"adults"`
	Students      int      `json:"students"`
	Children      int      `json:"children"`
	Infants       int      `json:"infants"`
	Options       []string `json:"options"`
	CustomerNote  *string  `json:"customerRequest,omitempty"`
	RoomPrice     int64    `json:"roomPrice"`
	AdditionalFee int64    `json:"additionalFee"`
	OptionsFee    int64    `json:"optionsFee"`
	TotalAmount   int64    `json:"totalAmount"`
	Status        string   `json:"status"`
	CancelledAt   *string  `json:"cancelledAt,omitempty"`
	CancelledBy   *string  `json:"cancelledBy,omitempty"`
	CheckedIn     bool     `json:"checkedIn"`
	CheckedInAt   *string  `json:"checkedInAt,omitempty"`
	CheckedOut    bool     `json:"checkedOut"`
	CheckedOutAt  *string  `json:"checkedOutAt,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ListResponse страница списка
type ListResponse struct {
	Items []ReservationResponse `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Size  int                   `json:"size"`
}

// BulkItemResult результат по одному бронированию
type BulkItemResult struct {
	ID    int64  `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// BulkStatusResponse итог массовой операции; частичный успех не откатывается
type BulkStatusResponse struct {
	Results   []BulkItemResult `json:"results"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// ToDomainStatus конвертирует строку в статус
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainReservation конвертирует domain модель в ответ
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	options := make([]string, 0, len(r.Options))
	for _, o := range r.Options {
		options = append(options, string(o))
	}

	resp := ReservationResponse{
		ID:            r.ID,
		Number:        r.Number,
		RoomID:        r.RoomID,
		RoomName:      r.RoomName,
		CheckIn:       r.CheckIn.Format(domain.DateFormat),
		CheckOut:      r.CheckOut.Format(domain.DateFormat),
		Nights:        r.Nights,
		BookerName:    r.BookerName,
		BookerPhone:   r.BookerPhone,
		BookerEmail:   r.BookerEmail,
		GuestName:     r.GuestName,
		GuestPhone:    r.GuestPhone,
		Adults:        r.Guests.Adults,
		Students:      r.Guests.Students,
		Children:      r.Guests.Children,
		Infants:       r.Guests.Infants,
		Options:       options,
		CustomerNote:  r.CustomerNote,
		RoomPrice:     r.RoomPrice,
		AdditionalFee: r.AdditionalFee,
		OptionsFee:    r.OptionsFee,
		TotalAmount:   r.TotalAmount,
		Status:        string(r.Status),
		CancelledAt:   formatTime(r.CancelledAt),
		CheckedIn:     r.CheckedIn,
		CheckedInAt:   formatTime(r.CheckedInAt),
		CheckedOut:    r.CheckedOut,
		CheckedOutAt:  formatTime(r.CheckedOutAt),
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.Format(time.RFC3339),
	}
	if r.CancelledBy != nil {
		by := string(*r.CancelledBy)
		resp.CancelledBy = &by
	}
	return resp
}

// FromDomainReservationList конвертирует список
func FromDomainReservationList(list []*domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromDomainReservation(r))
	}
	return out
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
