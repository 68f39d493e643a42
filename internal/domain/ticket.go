package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID           uint
	RaffleID     uint
	CustomerID   uint
	TicketNumber int
	QRCode       uuid.UUID
	Price        decimal.Decimal
	SoldAt       time.Time

	Raffle   Raffle
	Customer Customer
}
