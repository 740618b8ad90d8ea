package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// LedgerRepository defines the interface for balance ledger operations.
// Entries are append-only; there is no update or delete.
type LedgerRepository interface {
	// ListByClient returns a client's entries, newest first.
	ListByClient(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) ([]entity.BalanceEntry, int64, error)
	// LastEntry returns the most recent entry for a client, or nil if the
	// ledger is empty.
	LastEntry(ctx context.Context, clientID uuid.UUID) (*entity.BalanceEntry, error)
	// AppendAdjustment locks the client row, appends a manual adjustment
	// entry, and updates the materialized balance in one transaction.
	AppendAdjustment(ctx context.Context, clientID uuid.UUID, delta decimal.Decimal, note string) (*entity.BalanceEntry, error)
}
