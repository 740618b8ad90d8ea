package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerRepo is an in-memory LedgerRepository
type fakeLedgerRepo struct {
	clients *fakeClientRepo
	entries []entity.BalanceEntry
}

func (f *fakeLedgerRepo) ListByClient(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) ([]entity.BalanceEntry, int64, error) {
	var out []entity.BalanceEntry
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].ClientID == clientID {
			out = append(out, f.entries[i])
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeLedgerRepo) LastEntry(ctx context.Context, clientID uuid.UUID) (*entity.BalanceEntry, error) {
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].ClientID == clientID {
			return &f.entries[i], nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) AppendAdjustment(ctx context.Context, clientID uuid.UUID, delta decimal.Decimal, note string) (*entity.BalanceEntry, error) {
	client := f.clients.clients[clientID]
	client.Balance = client.Balance.Add(delta)
	entry := entity.BalanceEntry{
		ID:           uuid.New(),
		ClientID:     clientID,
		Source:       enum.EntrySourceAdjustment,
		Delta:        delta,
		BalanceAfter: client.Balance,
		Note:         note,
	}
	f.entries = append(f.entries, entry)
	return &entry, nil
}

func newTestClientService(t *testing.T) (*ClientService, *fakeClientRepo) {
	t.Helper()
	clients := newFakeClientRepo()
	return NewClientService(clients), clients
}

func TestCreateClient(t *testing.T) {
	svc, _ := newTestClientService(t)

	client, err := svc.CreateClient(context.Background(), &CreateClientInput{
		UserID:   uuid.New(),
		ShopName: "Lakshmi Jewellers",
		Name:     "Ravi",
		Phone:    "9876543210",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, client.ID)
	assert.True(t, client.Balance.IsZero())
}

func TestCreateClientMissingFields(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.CreateClient(context.Background(), &CreateClientInput{
		ShopName: "Lakshmi Jewellers",
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateClientDuplicatePhone(t *testing.T) {
	svc, _ := newTestClientService(t)

	_, err := svc.CreateClient(context.Background(), &CreateClientInput{
		UserID: uuid.New(), ShopName: "A", Name: "A", Phone: "9876543210",
	})
	require.NoError(t, err)

	_, err = svc.CreateClient(context.Background(), &CreateClientInput{
		UserID: uuid.New(), ShopName: "B", Name: "B", Phone: "9876543210",
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateClientPhoneConflict(t *testing.T) {
	svc, _ := newTestClientService(t)

	first, err := svc.CreateClient(context.Background(), &CreateClientInput{
		UserID: uuid.New(), ShopName: "A", Name: "A", Phone: "1111111111",
	})
	require.NoError(t, err)

	_, err = svc.CreateClient(context.Background(), &CreateClientInput{
		UserID: uuid.New(), ShopName: "B", Name: "B", Phone: "2222222222",
	})
	require.NoError(t, err)

	phone := "2222222222"
	_, err = svc.UpdateClient(context.Background(), &UpdateClientInput{
		ID:    first.ID,
		Phone: &phone,
	})

	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteClientWithBalanceRejected(t *testing.T) {
	svc, clients := newTestClientService(t)

	client := &entity.Client{ID: uuid.New(), ShopName: "A", Name: "A", Phone: "1", Balance: d("3.664")}
	clients.clients[client.ID] = client

	err := svc.DeleteClient(context.Background(), client.ID)

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.NotNil(t, clients.clients[client.ID])
}

func TestDeleteClientWithZeroBalance(t *testing.T) {
	svc, clients := newTestClientService(t)

	client := &entity.Client{ID: uuid.New(), ShopName: "A", Name: "A", Phone: "1"}
	clients.clients[client.ID] = client

	require.NoError(t, svc.DeleteClient(context.Background(), client.ID))
	assert.Nil(t, clients.clients[client.ID])
}
