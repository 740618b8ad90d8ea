package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
)

// AdminReceiptRepository defines the interface for admin receipt data
// operations. Admin receipts never participate in the balance ledger.
type AdminReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.AdminReceipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error)
	// Update replaces the receipt row and its item lists.
	Update(ctx context.Context, receipt *entity.AdminReceipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *AdminReceiptFilterParams) ([]entity.AdminReceipt, int64, error)
}

// AdminReceiptFilterParams contains filtering parameters for admin receipt queries
type AdminReceiptFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.ReceiptStatus
	MetalType  *enum.MetalType
	StartDate  *time.Time
	EndDate    *time.Time
}
