package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larifa/raffles-api/internal/domain"
	"github.com/larifa/raffles-api/internal/repository/dao"
)

type fakeDolibarrDAO struct {
	integration    dao.DolibarrIntegration
	integrationErr error

	txnsByRef     map[string]dao.DolibarrTransaction
	txnsByFacture map[string]dao.DolibarrTransaction

	outcome  dao.IssueOutcome
	issueErr error

	gotParams     dao.IssueParams
	refQueried    bool
	factureQueried bool
}

func (f *fakeDolibarrDAO) FindIntegration(_ context.Context) (dao.DolibarrIntegration, error) {
	return f.integration, f.integrationErr
}

func (f *fakeDolibarrDAO) FindTransactionByRef(_ context.Context, ref string) (dao.DolibarrTransaction, error) {
	f.refQueried = true
	if txn, ok := f.txnsByRef[ref]; ok {
		return txn, nil
	}

	return dao.DolibarrTransaction{}, dao.ErrTransactionNotFound
}

func (f *fakeDolibarrDAO) FindTransactionByFactureID(_ context.Context, factureID string) (dao.DolibarrTransaction, error) {
	f.factureQueried = true
	if txn, ok := f.txnsByFacture[factureID]; ok {
		return txn, nil
	}

	return dao.DolibarrTransaction{}, dao.ErrTransactionNotFound
}

func (f *fakeDolibarrDAO) IssueTickets(_ context.Context, params dao.IssueParams) (dao.IssueOutcome, error) {
	f.gotParams = params

	return f.outcome, f.issueErr
}

func TestDolibarrRepository_FindPriorTransaction_FactureIDFirst(t *testing.T) {
	factureID := "42"
	d := &fakeDolibarrDAO{
		txnsByFacture: map[string]dao.DolibarrTransaction{
			"42": {ID: 1, Ref: "FA-001", FactureID: &factureID, TicketsGenerated: 2},
		},
		txnsByRef: map[string]dao.DolibarrTransaction{
			"FA-001-RENAMED": {ID: 2, Ref: "FA-001-RENAMED", TicketsGenerated: 5},
		},
	}
	repo := NewDolibarrRepository(d)

	txn, err := repo.FindPriorTransaction(context.Background(), "FA-001-RENAMED", "42")
	require.NoError(t, err)
	assert.Equal(t, "FA-001", txn.Ref)
	assert.Equal(t, "42", txn.FactureID)
	assert.Equal(t, 2, txn.TicketsGenerated)
	assert.False(t, d.refQueried)
}

func TestDolibarrRepository_FindPriorTransaction_FallsBackToRef(t *testing.T) {
	d := &fakeDolibarrDAO{
		txnsByRef: map[string]dao.DolibarrTransaction{
			"INV-001": {ID: 1, Ref: "INV-001", TicketsGenerated: 3},
		},
	}
	repo := NewDolibarrRepository(d)

	txn, err := repo.FindPriorTransaction(context.Background(), "INV-001", "42")
	require.NoError(t, err)
	assert.Equal(t, "INV-001", txn.Ref)
	assert.True(t, d.factureQueried)
}

func TestDolibarrRepository_FindPriorTransaction_NotFound(t *testing.T) {
	d := &fakeDolibarrDAO{}
	repo := NewDolibarrRepository(d)

	_, err := repo.FindPriorTransaction(context.Background(), "INV-001", "")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.False(t, d.factureQueried)
}

func TestDolibarrRepository_FindPriorTransaction_EmptyRefWithoutFacture(t *testing.T) {
	d := &fakeDolibarrDAO{}
	repo := NewDolibarrRepository(d)

	_, err := repo.FindPriorTransaction(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
	assert.False(t, d.refQueried)
}

func TestDolibarrRepository_IssueTickets_ParamsMapping(t *testing.T) {
	d := &fakeDolibarrDAO{
		outcome: dao.IssueOutcome{
			Customer: dao.Customer{ID: 5, FirstName: "Juan Perez"},
			Tickets: []dao.Ticket{
				{ID: 1, RaffleID: 3, CustomerID: 5, TicketNumber: 1, QRCode: uuid.NewString()},
				{ID: 2, RaffleID: 3, CustomerID: 5, TicketNumber: 2, QRCode: uuid.NewString()},
			},
		},
	}
	repo := NewDolibarrRepository(d)

	invoice := domain.Invoice{
		Ref:            "INV-001",
		FactureID:      "42",
		Identification: "0912345678",
		CustomerName:   "Juan Perez",
		CustomerEmail:  "juan@example.com",
		TotalAmount:    decimal.RequireFromString("250.00"),
	}
	raffle := domain.Raffle{ID: 3, Name: "Rifa 2024", TicketPrice: decimal.NewFromInt(100)}

	customer, tickets, err := repo.IssueTickets(context.Background(), invoice, raffle, 2)
	require.NoError(t, err)

	assert.Equal(t, uint(3), d.gotParams.RaffleID)
	assert.Equal(t, "INV-001", d.gotParams.Ref)
	require.NotNil(t, d.gotParams.FactureID)
	assert.Equal(t, "42", *d.gotParams.FactureID)
	assert.Equal(t, 2, d.gotParams.Quantity)
	assert.True(t, d.gotParams.UnitPrice.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "0912345678", d.gotParams.Identification)

	assert.Equal(t, "Juan Perez", customer.FirstName)
	require.Len(t, tickets, 2)
	assert.Equal(t, 1, tickets[0].TicketNumber)
	assert.Equal(t, 2, tickets[1].TicketNumber)
}

func TestDolibarrRepository_IssueTickets_NoFactureID(t *testing.T) {
	d := &fakeDolibarrDAO{}
	repo := NewDolibarrRepository(d)

	invoice := domain.Invoice{
		Ref:            "INV-001",
		Identification: "0912345678",
		TotalAmount:    decimal.NewFromInt(100),
	}

	_, _, err := repo.IssueTickets(context.Background(), invoice, domain.Raffle{ID: 1}, 1)
	require.NoError(t, err)
	assert.Nil(t, d.gotParams.FactureID)
}
