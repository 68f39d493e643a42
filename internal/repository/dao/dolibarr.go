package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrIntegrationNotConfigured = errors.New("dolibarr integration is not configured")
	ErrTransactionExists        = errors.New("transaction already processed")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrRaffleNotFound           = errors.New("raffle not found")
)

type DolibarrIntegration struct {
	ID               uint   `gorm:"primaryKey"`
	APIKey           string `gorm:"not null"`
	ActiveRaffleID   *uint
	ActiveRaffle     *Raffle         `gorm:"foreignKey:ActiveRaffleID"`
	TicketsPerAmount int             `gorm:"not null;default:1"`
	AmountStep       decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	IsActive         bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// DolibarrTransaction is the idempotency ledger. Rows are written in
// the same database transaction that creates the tickets they account
// for, and are never updated or deleted afterwards.
type DolibarrTransaction struct {
	ID  uint   `gorm:"primaryKey"`
	Ref string `gorm:"not null;uniqueIndex"`

	// FactureID is the Dolibarr invoice rowid, which survives invoice
	// edits that change the ref. Nullable: older Dolibarr versions do
	// not send it.
	FactureID *string `gorm:"uniqueIndex"`

	Amount           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TicketsGenerated int             `gorm:"not null"`
	CreatedAt        time.Time       `gorm:"not null"`
}

type DolibarrDAO struct {
	db *gorm.DB
}

func NewDolibarrDAO(db *gorm.DB) *DolibarrDAO {
	return &DolibarrDAO{
		db: db,
	}
}

func (d *DolibarrDAO) FindIntegration(ctx context.Context) (DolibarrIntegration, error) {
	var integration DolibarrIntegration

	result := d.db.WithContext(ctx).Preload("ActiveRaffle").First(&integration)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DolibarrIntegration{}, ErrIntegrationNotConfigured
		}

		return DolibarrIntegration{}, result.Error
	}

	return integration, nil
}

func (d *DolibarrDAO) FindTransactionByRef(ctx context.Context, ref string) (DolibarrTransaction, error) {
	var txn DolibarrTransaction

	result := d.db.WithContext(ctx).First(&txn, "ref = ?", ref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DolibarrTransaction{}, ErrTransactionNotFound
		}

		return DolibarrTransaction{}, result.Error
	}

	return txn, nil
}

func (d *DolibarrDAO) FindTransactionByFactureID(ctx context.Context, factureID string) (DolibarrTransaction, error) {
	var txn DolibarrTransaction

	result := d.db.WithContext(ctx).First(&txn, "facture_id = ?", factureID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return DolibarrTransaction{}, ErrTransactionNotFound
		}

		return DolibarrTransaction{}, result.Error
	}

	return txn, nil
}

// IssueParams is one validated webhook call, ready to be applied.
type IssueParams struct {
	RaffleID       uint
	Ref            string
	FactureID      *string
	Amount         decimal.Decimal
	Quantity       int
	UnitPrice      decimal.Decimal
	Identification string
	FirstName      string
	Email          string
	Phone          string
	Address        string
	SourceID       string
}

type IssueOutcome struct {
	Customer        Customer
	CustomerCreated bool
	Tickets         []Ticket
}

// IssueTickets runs the whole issuance as one database transaction:
// ledger insert (when a ref is present), customer upsert, exclusive
// lock on the raffle row, read of the current max ticket_number, and
// batch insert of the new tickets. A unique violation on the ledger
// means a concurrent or replayed delivery won the race and surfaces
// as ErrTransactionExists.
func (d *DolibarrDAO) IssueTickets(ctx context.Context, params IssueParams) (IssueOutcome, error) {
	var outcome IssueOutcome

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if params.Ref != "" {
			txn := DolibarrTransaction{
				Ref:              params.Ref,
				FactureID:        params.FactureID,
				Amount:           params.Amount,
				TicketsGenerated: params.Quantity,
			}
			if err := tx.Create(&txn).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return ErrTransactionExists
				}

				return fmt.Errorf("tx.Create transaction -> %w", err)
			}
		}

		customer, created, err := d.upsertCustomer(tx, params)
		if err != nil {
			return err
		}
		outcome.Customer = customer
		outcome.CustomerCreated = created

		if params.Quantity <= 0 {
			return nil
		}

		var raffle Raffle
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&raffle, params.RaffleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRaffleNotFound
			}

			return fmt.Errorf("tx.First raffle -> %w", err)
		}

		var maxNumber int
		if err := tx.Model(&Ticket{}).
			Where("raffle_id = ?", raffle.ID).
			Select("COALESCE(MAX(ticket_number), 0)").
			Scan(&maxNumber).Error; err != nil {
			return fmt.Errorf("tx.Scan max ticket_number -> %w", err)
		}

		now := time.Now()
		tickets := make([]Ticket, params.Quantity)
		for i := range tickets {
			tickets[i] = Ticket{
				RaffleID:     raffle.ID,
				CustomerID:   customer.ID,
				TicketNumber: maxNumber + i + 1,
				QRCode:       uuid.NewString(),
				Price:        params.UnitPrice,
				SoldAt:       now,
			}
		}
		if err := tx.Create(&tickets).Error; err != nil {
			return fmt.Errorf("tx.Create tickets -> %w", err)
		}
		outcome.Tickets = tickets

		return nil
	})
	if err != nil {
		return IssueOutcome{}, err
	}

	return outcome, nil
}

func (d *DolibarrDAO) upsertCustomer(tx *gorm.DB, params IssueParams) (Customer, bool, error) {
	var customer Customer

	err := tx.First(&customer, "identification = ?", params.Identification).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		name := params.FirstName
		if name == "" {
			name = "Unknown"
		}

		ident := params.Identification
		customer = Customer{
			Identification: &ident,
			FirstName:      name,
			Email:          params.Email,
			Phone:          params.Phone,
			Address:        params.Address,
			AdditionalInfo: fmt.Sprintf("Created from Dolibarr webhook (third party %v)", params.SourceID),
		}
		if err := tx.Create(&customer).Error; err != nil {
			return Customer{}, false, fmt.Errorf("tx.Create customer -> %w", err)
		}

		return customer, true, nil
	}
	if err != nil {
		return Customer{}, false, fmt.Errorf("tx.First customer -> %w", err)
	}

	// Overwrite with the latest webhook data, keeping stored values
	// for fields the caller omitted.
	if params.FirstName != "" {
		customer.FirstName = params.FirstName
	}
	if params.Email != "" {
		customer.Email = params.Email
	}
	if params.Phone != "" {
		customer.Phone = params.Phone
	}
	if params.Address != "" {
		customer.Address = params.Address
	}
	if err := tx.Save(&customer).Error; err != nil {
		return Customer{}, false, fmt.Errorf("tx.Save customer -> %w", err)
	}

	return customer, false, nil
}
