package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/repository"
)

var ErrTicketNotFound = repository.ErrTicketNotFound

type TicketRepository interface {
	FindByQRCode(ctx context.Context, qrCode uuid.UUID) (domain.Ticket, error)
}

type TicketService struct {
	repo TicketRepository
}

func NewTicketService(repo TicketRepository) *TicketService {
	return &TicketService{
		repo: repo,
	}
}

func (s *TicketService) VerifyTicket(ctx context.Context, qrCode uuid.UUID) (domain.Ticket, error) {
	ticket, err := s.repo.FindByQRCode(ctx, qrCode)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("s.repo.FindByQRCode -> %w", err)
	}

	return ticket, nil
}
