package dao

import (
	"time"

	"github.com/shopspring/decimal"
)

type Raffle struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null;uniqueIndex:idx_raffles_name_year"`
	Year        int    `gorm:"not null;uniqueIndex:idx_raffles_name_year"`
	Description string
	TicketPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

type Ticket struct {
	ID           uint     `gorm:"primaryKey"`
	RaffleID     uint     `gorm:"not null;uniqueIndex:idx_tickets_raffle_number"`
	Raffle       Raffle   `gorm:"foreignKey:RaffleID"`
	CustomerID   uint     `gorm:"not null;index"`
	Customer     Customer `gorm:"foreignKey:CustomerID"`
	TicketNumber int      `gorm:"not null;uniqueIndex:idx_tickets_raffle_number"`

	// QRCode is the verification token embedded in the ticket's QR
	// link. Random, never reused, never editable.
	QRCode string `gorm:"type:uuid;not null;uniqueIndex"`

	Price  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SoldAt time.Time       `gorm:"not null"`
}
