package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

type TicketDAO interface {
	FindByQRCode(ctx context.Context, qrCode string) (dao.Ticket, error)
	CountByRaffleID(ctx context.Context, raffleID uint) (int64, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) FindByQRCode(ctx context.Context, qrCode uuid.UUID) (domain.Ticket, error) {
	found, err := r.dao.FindByQRCode(ctx, qrCode.String())
	if err != nil {
		if errors.Is(err, dao.ErrTicketNotFound) {
			return domain.Ticket{}, ErrTicketNotFound
		}

		return domain.Ticket{}, fmt.Errorf("r.dao.FindByQRCode -> %w", err)
	}

	return ticketDaoToDomain(found), nil
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	qrCode, _ := uuid.Parse(t.QRCode)

	return domain.Ticket{
		ID:           t.ID,
		RaffleID:     t.RaffleID,
		CustomerID:   t.CustomerID,
		TicketNumber: t.TicketNumber,
		QRCode:       qrCode,
		Price:        t.Price,
		SoldAt:       t.SoldAt,
		Raffle:       raffleDaoToDomain(t.Raffle),
		Customer:     customerDaoToDomain(t.Customer),
	}
}

func raffleDaoToDomain(r dao.Raffle) domain.Raffle {
	return domain.Raffle{
		ID:          r.ID,
		Name:        r.Name,
		Year:        r.Year,
		Description: r.Description,
		TicketPrice: r.TicketPrice,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func customerDaoToDomain(c dao.Customer) domain.Customer {
	customer := domain.Customer{
		ID:             c.ID,
		FirstName:      c.FirstName,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		AdditionalInfo: c.AdditionalInfo,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if c.Identification != nil {
		customer.Identification = *c.Identification
	}

	return customer
}
