package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ReceiptRepository defines the interface for receipt data operations.
//
// The *WithLedger methods are the only write paths for client receipts. Each
// runs in a single database transaction that locks the client row, reads the
// authoritative balance, persists the receipt, appends a balance ledger
// entry, and updates the materialized client balance. The opening balance a
// form happened to display is never trusted.
type ReceiptRepository interface {
	// CreateWithLedger persists the receipt and its items. The receipt's
	// OpeningBalance/ClosingBalance are filled in from the locked client
	// balance plus delta before insert.
	CreateWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error
	// UpdateWithLedger replaces the receipt's items and totals. oldDelta is
	// the receipt's previous balance delta; the ledger records the
	// difference as a fresh append.
	UpdateWithLedger(ctx context.Context, receipt *entity.Receipt, oldDelta, newDelta decimal.Decimal) error
	// DeleteWithLedger soft-deletes the receipt and appends a reversal entry.
	DeleteWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.Receipt, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	List(ctx context.Context, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	ListWithCursor(ctx context.Context, params *ReceiptCursorFilterParams) ([]entity.Receipt, error)
	ListForExport(ctx context.Context, startDate, endDate *time.Time) ([]entity.Receipt, error)
}

// ReceiptFilterParams contains filtering parameters for receipt queries
type ReceiptFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ReceiptStatus
	MetalType  *enum.MetalType
	ClientID   *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}

// ReceiptCursorFilterParams contains cursor-based filtering for receipt queries
type ReceiptCursorFilterParams struct {
	Cursor    *pagination.CursorParams
	Search    string
	Status    *enum.ReceiptStatus
	MetalType *enum.MetalType
	ClientID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// VoucherRepository allocates sequential voucher numbers.
type VoucherRepository interface {
	// Next advances the sequence for prefix under a row lock and returns the
	// formatted voucher number.
	Next(ctx context.Context, prefix string) (string, error)
	// Peek returns the voucher number that the next allocation would
	// produce without advancing the sequence.
	Peek(ctx context.Context, prefix string) (string, error)
}
