package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// LedgerService exposes a client's balance history. The ledger is the source
// of truth for balances; the value on the client row is a materialization of
// the latest entry.
type LedgerService struct {
	ledgerRepo repository.LedgerRepository
	clientRepo repository.ClientRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo repository.LedgerRepository, clientRepo repository.ClientRepository) *LedgerService {
	return &LedgerService{
		ledgerRepo: ledgerRepo,
		clientRepo: clientRepo,
	}
}

// ClientStatement is a client's balance history with the current balance.
type ClientStatement struct {
	Client  *entity.Client                                   `json:"client"`
	Entries *pagination.PaginatedResult[entity.BalanceEntry] `json:"entries"`
}

// GetStatement returns a client's ledger entries, newest first
func (s *LedgerService) GetStatement(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) (*ClientStatement, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	entries, total, err := s.ledgerRepo.ListByClient(ctx, clientID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return &ClientStatement{
		Client:  client,
		Entries: pagination.NewPaginatedResult(entries, pag),
	}, nil
}

// AdjustBalanceInput represents a manual balance adjustment
type AdjustBalanceInput struct {
	ClientID uuid.UUID
	Delta    decimal.Decimal
	Note     string
}

// AdjustBalance appends a manual adjustment entry. Admin only; enforced at
// the route level.
func (s *LedgerService) AdjustBalance(ctx context.Context, input *AdjustBalanceInput) (*entity.BalanceEntry, error) {
	if input.Delta.IsZero() {
		return nil, apperror.NewBadRequestError("Adjustment delta must be non-zero")
	}
	if input.Note == "" {
		return nil, apperror.NewBadRequestError("Adjustment note is required")
	}

	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	return s.ledgerRepo.AppendAdjustment(ctx, input.ClientID, input.Delta, input.Note)
}

// BalanceCheck reports whether a client's materialized balance matches the
// latest ledger entry.
type BalanceCheck struct {
	ClientID      uuid.UUID       `json:"client_id"`
	Materialized  decimal.Decimal `json:"materialized"`
	LedgerBalance decimal.Decimal `json:"ledger_balance"`
	Consistent    bool            `json:"consistent"`
}

// CheckBalance compares the client row's balance with the last ledger entry.
// A client with no entries is consistent when its balance is zero.
func (s *LedgerService) CheckBalance(ctx context.Context, clientID uuid.UUID) (*BalanceCheck, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	last, err := s.ledgerRepo.LastEntry(ctx, clientID)
	if err != nil {
		return nil, err
	}

	check := &BalanceCheck{
		ClientID:     clientID,
		Materialized: client.Balance,
	}
	if last != nil {
		check.LedgerBalance = last.BalanceAfter
	}
	check.Consistent = check.Materialized.Equal(check.LedgerBalance)
	return check, nil
}
