package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice carries the validated fields of one Dolibarr webhook call.
// Ref and FactureID are optional; an empty Ref disables idempotency
// tracking for the call.
type Invoice struct {
	Ref             string
	FactureID       string
	Identification  string
	SourceID        string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	TotalAmount     decimal.Decimal
}

// Transaction is one immutable idempotency ledger entry. Its presence
// proves the external transaction was already processed.
type Transaction struct {
	ID               uint
	Ref              string
	FactureID        string
	Amount           decimal.Decimal
	TicketsGenerated int
	CreatedAt        time.Time
}

// IssuanceResult is the outcome of a successfully processed invoice.
type IssuanceResult struct {
	Customer      string
	Raffle        string
	Ref           string
	TicketNumbers []int
}

func (r IssuanceResult) TicketsGenerated() int {
	return len(r.TicketNumbers)
}
