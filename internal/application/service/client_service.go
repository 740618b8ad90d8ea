package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	UserID   uuid.UUID
	ShopName string
	Name     string
	Phone    string
	Address  string
	Email    *string
}

// CreateClient creates a new client with a zero opening balance
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	if input.ShopName == "" || input.Name == "" || input.Phone == "" {
		return nil, apperror.NewBadRequestError("Shop name, client name and phone are required")
	}

	existing, err := s.clientRepo.GetByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A client with this phone number already exists")
	}

	client := &entity.Client{
		UserID:   input.UserID,
		ShopName: input.ShopName,
		Name:     input.Name,
		Phone:    input.Phone,
		Address:  input.Address,
		Email:    input.Email,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// ListClients lists clients with optional search
func (s *ClientService) ListClients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// ListClientsWithCursor lists clients using cursor-based pagination
func (s *ClientService) ListClientsWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Client], error) {
	clients, err := s.clientRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(clients, params.Limit,
		func(c entity.Client) string { return c.ID.String() },
		func(c entity.Client) time.Time { return c.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ID       uuid.UUID
	ShopName *string
	Name     *string
	Phone    *string
	Address  *string
	Email    *string
}

// UpdateClient updates a client's profile fields. The balance cannot be set
// through this path; it only changes through receipts and ledger adjustments.
func (s *ClientService) UpdateClient(ctx context.Context, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.Phone != nil && *input.Phone != client.Phone {
		existing, err := s.clientRepo.GetByPhone(ctx, *input.Phone)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != client.ID {
			return nil, apperror.NewConflictError("A client with this phone number already exists")
		}
		client.Phone = *input.Phone
	}
	if input.ShopName != nil {
		client.ShopName = *input.ShopName
	}
	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Address != nil {
		client.Address = *input.Address
	}
	if input.Email != nil {
		client.Email = input.Email
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// DeleteClient soft-deletes a client. The receipts and ledger history remain.
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}

	if !client.Balance.IsZero() {
		return apperror.NewBadRequestError("Client has a non-zero balance; settle it before deactivating")
	}

	return s.clientRepo.Delete(ctx, id)
}
