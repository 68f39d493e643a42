package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmountStep = errors.New("amount_step must be positive")

// Integration is the Dolibarr webhook configuration. A single row is
// kept in the database and re-read on every request, so key rotations
// and raffle switches take effect without a restart.
type Integration struct {
	ID               uint
	APIKey           string
	ActiveRaffle     *Raffle
	TicketsPerAmount int
	AmountStep       decimal.Decimal
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TicketQuantity converts a paid amount into a ticket count:
// floor(amount / amount_step) * tickets_per_amount. An amount below
// the step yields zero, which is a valid outcome, not an error.
func (i *Integration) TicketQuantity(amount decimal.Decimal) (int, error) {
	if i.AmountStep.Sign() <= 0 {
		return 0, ErrInvalidAmountStep
	}

	steps := amount.Div(i.AmountStep).IntPart()
	if steps <= 0 {
		return 0, nil
	}

	return int(steps) * i.TicketsPerAmount, nil
}
