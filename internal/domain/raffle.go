package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Raffle struct {
	ID          uint
	Name        string
	Year        int
	Description string
	TicketPrice decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
