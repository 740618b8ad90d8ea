package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
)

// ClientRepository defines the interface for client data operations.
// Balance is never written through this interface; only the ledger-appending
// receipt and adjustment paths may touch it.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	GetByPhone(ctx context.Context, phone string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// Delete soft-deletes the client; the ledger and receipts are retained.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns clients matching search over shop name, client name and phone.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	// ListWithCursor returns clients using cursor-based pagination.
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Client, error)
}
