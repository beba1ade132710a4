package cancel_reservation

// CancelRequest HTTP request model; телефон подтверждает, что отменяет сам бронирующий
type CancelRequest struct {
	Phone string `json:"phone"`
}
