package update_reservation_status

// StatusResponse HTTP response model
type StatusResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}
