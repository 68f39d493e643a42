package response

import "github.com/shopspring/decimal"

type WebhookCreatedResponse struct {
	Message          string `json:"message"`
	Customer         string `json:"customer"`
	TicketsGenerated int    `json:"tickets_generated"`
	TicketNumbers    []int  `json:"ticket_numbers"`
	Raffle           string `json:"raffle"`
	Ref              string `json:"ref"`
}

type WebhookBelowThresholdResponse struct {
	Message          string          `json:"message"`
	TicketsGenerated int             `json:"tickets_generated"`
	AmountReceived   decimal.Decimal `json:"amount_received"`
	AmountRequired   decimal.Decimal `json:"amount_required"`
}

type WebhookDuplicateResponse struct {
	Error                      string `json:"error"`
	Ref                        string `json:"ref"`
	TicketsPreviouslyGenerated int    `json:"tickets_previously_generated"`
}
