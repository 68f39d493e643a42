package response

import "time"

type TicketVerificationResponse struct {
	Valid        bool      `json:"valid"`
	TicketNumber int       `json:"ticket_number"`
	Raffle       string    `json:"raffle"`
	Year         int       `json:"year"`
	Customer     string    `json:"customer"`
	SoldAt       time.Time `json:"sold_at"`
	QRImageURL   string    `json:"qr_image_url"`
}
