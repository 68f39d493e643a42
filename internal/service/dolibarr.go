package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/repository"
)

var (
	ErrIntegrationNotConfigured = repository.ErrIntegrationNotConfigured
	ErrInvalidAmountStep        = domain.ErrInvalidAmountStep
	ErrNoActiveRaffle           = errors.New("no active raffle configured")
)

// DuplicateTransactionError reports a replayed delivery together with
// the ticket count recorded when the transaction was first processed.
type DuplicateTransactionError struct {
	Ref              string
	TicketsGenerated int
}

func (e *DuplicateTransactionError) Error() string {
	return fmt.Sprintf("transaction %v already processed (%v tickets)", e.Ref, e.TicketsGenerated)
}

type DolibarrRepository interface {
	FindIntegration(ctx context.Context) (domain.Integration, error)
	FindPriorTransaction(ctx context.Context, ref, factureID string) (domain.Transaction, error)
	IssueTickets(ctx context.Context, invoice domain.Invoice, raffle domain.Raffle, quantity int) (domain.Customer, []domain.Ticket, error)
}

type DolibarrService struct {
	repo DolibarrRepository
}

func NewDolibarrService(repo DolibarrRepository) *DolibarrService {
	return &DolibarrService{
		repo: repo,
	}
}

// GetIntegration reads the webhook configuration. It is called once
// per request by the gateway and threaded through, never cached.
func (s *DolibarrService) GetIntegration(ctx context.Context) (domain.Integration, error) {
	integration, err := s.repo.FindIntegration(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrIntegrationNotConfigured) {
			return domain.Integration{}, ErrIntegrationNotConfigured
		}

		return domain.Integration{}, fmt.Errorf("s.repo.FindIntegration -> %w", err)
	}

	return integration, nil
}

// ProcessInvoice coordinates one webhook delivery: duplicate
// pre-check, quantity derivation, then the atomic issuance (ledger
// entry, customer upsert, raffle lock, ticket creation). The pre-check
// is advisory only; when two deliveries with the same ref race, the
// loser hits the ledger's unique constraint and is translated into
// the same duplicate result.
func (s *DolibarrService) ProcessInvoice(ctx context.Context, integration domain.Integration, invoice domain.Invoice) (domain.IssuanceResult, error) {
	if integration.ActiveRaffle == nil {
		return domain.IssuanceResult{}, ErrNoActiveRaffle
	}
	raffle := *integration.ActiveRaffle

	if invoice.Ref != "" || invoice.FactureID != "" {
		prior, err := s.repo.FindPriorTransaction(ctx, invoice.Ref, invoice.FactureID)
		if err == nil {
			return domain.IssuanceResult{}, s.duplicateError(invoice, prior)
		}
		if !errors.Is(err, repository.ErrTransactionNotFound) {
			return domain.IssuanceResult{}, fmt.Errorf("s.repo.FindPriorTransaction -> %w", err)
		}
	}

	quantity, err := integration.TicketQuantity(invoice.TotalAmount)
	if err != nil {
		return domain.IssuanceResult{}, err
	}

	customer, tickets, err := s.repo.IssueTickets(ctx, invoice, raffle, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionExists) {
			return domain.IssuanceResult{}, s.lostRace(ctx, invoice)
		}

		return domain.IssuanceResult{}, fmt.Errorf("s.repo.IssueTickets -> %w", err)
	}

	numbers := make([]int, len(tickets))
	for i, t := range tickets {
		numbers[i] = t.TicketNumber
	}

	return domain.IssuanceResult{
		Customer:      customer.FirstName,
		Raffle:        raffle.Name,
		Ref:           invoice.Ref,
		TicketNumbers: numbers,
	}, nil
}

// lostRace resolves the duplicate response after the ledger's unique
// constraint rejected the insert: the winner's row is durable at this
// point, so re-reading it yields the original ticket count.
func (s *DolibarrService) lostRace(ctx context.Context, invoice domain.Invoice) error {
	prior, err := s.repo.FindPriorTransaction(ctx, invoice.Ref, invoice.FactureID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return &DuplicateTransactionError{Ref: invoice.Ref}
		}

		return fmt.Errorf("s.repo.FindPriorTransaction -> %w", err)
	}

	return s.duplicateError(invoice, prior)
}

func (s *DolibarrService) duplicateError(invoice domain.Invoice, prior domain.Transaction) error {
	ref := invoice.Ref
	if ref == "" {
		ref = prior.Ref
	}

	return &DuplicateTransactionError{
		Ref:              ref,
		TicketsGenerated: prior.TicketsGenerated,
	}
}
