package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) FindByQRCode(ctx context.Context, qrCode string) (Ticket, error) {
	var ticket Ticket

	result := d.db.WithContext(ctx).
		Preload("Raffle").
		Preload("Customer").
		First(&ticket, "qr_code = ?", qrCode)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Ticket{}, ErrTicketNotFound
		}

		return Ticket{}, result.Error
	}

	return ticket, nil
}

func (d *TicketDAO) CountByRaffleID(ctx context.Context, raffleID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).Where("raffle_id = ?", raffleID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
