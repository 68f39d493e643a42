package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/repository/dao"
)

var (
	ErrIntegrationNotConfigured = dao.ErrIntegrationNotConfigured
	ErrTransactionExists        = dao.ErrTransactionExists
	ErrTransactionNotFound      = dao.ErrTransactionNotFound
	ErrRaffleNotFound           = dao.ErrRaffleNotFound
)

type DolibarrDAO interface {
	FindIntegration(ctx context.Context) (dao.DolibarrIntegration, error)
	FindTransactionByRef(ctx context.Context, ref string) (dao.DolibarrTransaction, error)
	FindTransactionByFactureID(ctx context.Context, factureID string) (dao.DolibarrTransaction, error)
	IssueTickets(ctx context.Context, params dao.IssueParams) (dao.IssueOutcome, error)
}

type DolibarrRepository struct {
	dao DolibarrDAO
}

func NewDolibarrRepository(dao DolibarrDAO) *DolibarrRepository {
	return &DolibarrRepository{
		dao: dao,
	}
}

func (r *DolibarrRepository) FindIntegration(ctx context.Context) (domain.Integration, error) {
	integration, err := r.dao.FindIntegration(ctx)
	if err != nil {
		return domain.Integration{}, fmt.Errorf("r.dao.FindIntegration -> %w", err)
	}

	return r.integrationDaoToDomain(integration), nil
}

// FindPriorTransaction looks for a ledger entry matching the call.
// The facture_id is checked first: an edited invoice comes back with a
// new ref but the same facture_id, and must still count as a replay.
func (r *DolibarrRepository) FindPriorTransaction(ctx context.Context, ref, factureID string) (domain.Transaction, error) {
	if factureID != "" {
		txn, err := r.dao.FindTransactionByFactureID(ctx, factureID)
		if err == nil {
			return r.transactionDaoToDomain(txn), nil
		}
		if !errors.Is(err, dao.ErrTransactionNotFound) {
			return domain.Transaction{}, fmt.Errorf("r.dao.FindTransactionByFactureID -> %w", err)
		}
	}

	if ref == "" {
		return domain.Transaction{}, ErrTransactionNotFound
	}

	txn, err := r.dao.FindTransactionByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, dao.ErrTransactionNotFound) {
			return domain.Transaction{}, ErrTransactionNotFound
		}

		return domain.Transaction{}, fmt.Errorf("r.dao.FindTransactionByRef -> %w", err)
	}

	return r.transactionDaoToDomain(txn), nil
}

func (r *DolibarrRepository) IssueTickets(ctx context.Context, invoice domain.Invoice, raffle domain.Raffle, quantity int) (domain.Customer, []domain.Ticket, error) {
	params := dao.IssueParams{
		RaffleID:       raffle.ID,
		Ref:            invoice.Ref,
		Amount:         invoice.TotalAmount,
		Quantity:       quantity,
		UnitPrice:      raffle.TicketPrice,
		Identification: invoice.Identification,
		FirstName:      invoice.CustomerName,
		Email:          invoice.CustomerEmail,
		Phone:          invoice.CustomerPhone,
		Address:        invoice.CustomerAddress,
		SourceID:       invoice.SourceID,
	}
	if invoice.FactureID != "" {
		factureID := invoice.FactureID
		params.FactureID = &factureID
	}

	outcome, err := r.dao.IssueTickets(ctx, params)
	if err != nil {
		return domain.Customer{}, nil, fmt.Errorf("r.dao.IssueTickets -> %w", err)
	}

	tickets := make([]domain.Ticket, len(outcome.Tickets))
	for i, t := range outcome.Tickets {
		tickets[i] = ticketDaoToDomain(t)
	}

	return customerDaoToDomain(outcome.Customer), tickets, nil
}

func (r *DolibarrRepository) integrationDaoToDomain(i dao.DolibarrIntegration) domain.Integration {
	integration := domain.Integration{
		ID:               i.ID,
		APIKey:           i.APIKey,
		TicketsPerAmount: i.TicketsPerAmount,
		AmountStep:       i.AmountStep,
		IsActive:         i.IsActive,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
	if i.ActiveRaffle != nil {
		raffle := raffleDaoToDomain(*i.ActiveRaffle)
		integration.ActiveRaffle = &raffle
	}

	return integration
}

func (r *DolibarrRepository) transactionDaoToDomain(t dao.DolibarrTransaction) domain.Transaction {
	txn := domain.Transaction{
		ID:               t.ID,
		Ref:              t.Ref,
		Amount:           t.Amount,
		TicketsGenerated: t.TicketsGenerated,
		CreatedAt:        t.CreatedAt,
	}
	if t.FactureID != nil {
		txn.FactureID = *t.FactureID
	}

	return txn
}
