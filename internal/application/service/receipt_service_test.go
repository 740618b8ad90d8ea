package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fakeClientRepo is an in-memory ClientRepository
type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
}

func (f *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return f.clients[id], nil
}

func (f *fakeClientRepo) GetByPhone(ctx context.Context, phone string) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var out []entity.Client
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeClientRepo) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

// fakeReceiptRepo mimics the transactional ledger behavior in memory: every
// write path locks nothing but applies the same opening/closing and balance
// bookkeeping the real repository does.
type fakeReceiptRepo struct {
	clients  *fakeClientRepo
	receipts map[uuid.UUID]*entity.Receipt
	entries  []entity.BalanceEntry
}

func newFakeReceiptRepo(clients *fakeClientRepo) *fakeReceiptRepo {
	return &fakeReceiptRepo{
		clients:  clients,
		receipts: make(map[uuid.UUID]*entity.Receipt),
	}
}

func (f *fakeReceiptRepo) CreateWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error {
	client := f.clients.clients[receipt.ClientID]
	receipt.OpeningBalance = client.Balance
	receipt.ClosingBalance = client.Balance.Add(delta)
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	f.receipts[receipt.ID] = receipt
	client.Balance = receipt.ClosingBalance
	f.entries = append(f.entries, entity.BalanceEntry{
		ClientID:     receipt.ClientID,
		ReceiptID:    &receipt.ID,
		Source:       enum.EntrySourceReceipt,
		Delta:        delta,
		BalanceAfter: client.Balance,
	})
	return nil
}

func (f *fakeReceiptRepo) UpdateWithLedger(ctx context.Context, receipt *entity.Receipt, oldDelta, newDelta decimal.Decimal) error {
	client := f.clients.clients[receipt.ClientID]
	adjustment := newDelta.Sub(oldDelta)
	client.Balance = client.Balance.Add(adjustment)
	receipt.ClosingBalance = receipt.OpeningBalance.Add(newDelta)
	f.receipts[receipt.ID] = receipt
	f.entries = append(f.entries, entity.BalanceEntry{
		ClientID:     receipt.ClientID,
		ReceiptID:    &receipt.ID,
		Source:       enum.EntrySourceAdjustment,
		Delta:        adjustment,
		BalanceAfter: client.Balance,
	})
	return nil
}

func (f *fakeReceiptRepo) DeleteWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error {
	client := f.clients.clients[receipt.ClientID]
	client.Balance = client.Balance.Sub(delta)
	delete(f.receipts, receipt.ID)
	f.entries = append(f.entries, entity.BalanceEntry{
		ClientID:     receipt.ClientID,
		ReceiptID:    &receipt.ID,
		Source:       enum.EntrySourceReversal,
		Delta:        delta.Neg(),
		BalanceAfter: client.Balance,
	})
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptRepo) GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.Receipt, error) {
	for _, r := range f.receipts {
		if r.VoucherNo == voucherNo {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptRepo) List(ctx context.Context, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var out []entity.Receipt
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (f *fakeReceiptRepo) ListWithCursor(ctx context.Context, params *repository.ReceiptCursorFilterParams) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReceiptRepo) ListForExport(ctx context.Context, startDate, endDate *time.Time) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, nil
}

// fakeVoucherRepo allocates sequential voucher numbers in memory
type fakeVoucherRepo struct {
	next int64
}

func (f *fakeVoucherRepo) Next(ctx context.Context, prefix string) (string, error) {
	f.next++
	return fmt.Sprintf("%s-%06d", prefix, f.next), nil
}

func (f *fakeVoucherRepo) Peek(ctx context.Context, prefix string) (string, error) {
	return fmt.Sprintf("%s-%06d", prefix, f.next+1), nil
}

func newTestReceiptService(t *testing.T) (*ReceiptService, *fakeClientRepo, *fakeReceiptRepo, *entity.Client) {
	t.Helper()

	clients := newFakeClientRepo()
	receipts := newFakeReceiptRepo(clients)
	vouchers := &fakeVoucherRepo{}

	client := &entity.Client{
		ID:       uuid.New(),
		ShopName: "Lakshmi Jewellers",
		Name:     "Ravi",
		Phone:    "9876543210",
	}
	clients.clients[client.ID] = client

	svc := NewReceiptService(receipts, clients, vouchers, "GS")
	return svc, clients, receipts, client
}

func validGiven() []GivenItemInput {
	return []GivenItemInput{
		{ItemName: "Ring", GrossWt: d("10"), StoneWt: d("1"), MeltingTouch: d("91.6"), StoneAmt: 50},
	}
}

func TestCreateReceipt(t *testing.T) {
	svc, _, repo, client := newTestReceiptService(t)

	receipt, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		MetalType:  enum.MetalTypeGold,
		GivenItems: validGiven(),
		ReceivedItems: []ReceivedItemInput{
			{ReceivedGold: d("5"), Melting: d("91.6")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "GS-000001", receipt.VoucherNo)
	assert.Equal(t, enum.ReceiptStatusComplete, receipt.Status)
	assert.Equal(t, "Lakshmi Jewellers", receipt.ClientShopName)

	// Fine weights: given 8.244, received 4.58, delta 3.664
	assert.True(t, receipt.TotalGivenFineWt.Equal(d("8.244")), "given fine %s", receipt.TotalGivenFineWt)
	assert.True(t, receipt.TotalReceivedFineWt.Equal(d("4.58")), "received fine %s", receipt.TotalReceivedFineWt)
	assert.True(t, receipt.OpeningBalance.IsZero())
	assert.True(t, receipt.ClosingBalance.Equal(d("3.664")), "closing %s", receipt.ClosingBalance)
	assert.True(t, client.Balance.Equal(d("3.664")))

	// Derived item fields are recomputed server-side
	require.Len(t, receipt.GivenItems, 1)
	assert.True(t, receipt.GivenItems[0].NetWt.Equal(d("9")))
	assert.True(t, receipt.GivenItems[0].FineWt.Equal(d("8.244")))
	assert.Equal(t, int64(5000), receipt.GivenItems[0].StoneAmt)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, enum.EntrySourceReceipt, repo.entries[0].Source)
}

func TestCreateReceiptBlankReceivedLinesDropped(t *testing.T) {
	svc, _, _, client := newTestReceiptService(t)

	receipt, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		GivenItems: validGiven(),
		ReceivedItems: []ReceivedItemInput{
			{}, // blank rows from the entry form
			{},
		},
	})

	require.NoError(t, err)
	assert.Empty(t, receipt.ReceivedItems)
	assert.Equal(t, enum.ReceiptStatusIncomplete, receipt.Status)
	assert.True(t, receipt.ClosingBalance.Equal(d("8.244")))
}

func TestCreateReceiptUnknownClient(t *testing.T) {
	svc, _, _, _ := newTestReceiptService(t)

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		ClientID:   uuid.New(),
		GivenItems: validGiven(),
	})

	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestCreateReceiptValidation(t *testing.T) {
	svc, _, _, client := newTestReceiptService(t)

	tests := []struct {
		name  string
		given []GivenItemInput
		field string
	}{
		{
			"zero melting touch",
			[]GivenItemInput{{ItemName: "Ring", GrossWt: d("10"), MeltingTouch: d("0")}},
			"given_items[0].melting_touch",
		},
		{
			"stone exceeds gross",
			[]GivenItemInput{{ItemName: "Ring", GrossWt: d("1"), StoneWt: d("5"), MeltingTouch: d("91.6")}},
			"given_items[0].stone_wt",
		},
		{
			"missing item name",
			[]GivenItemInput{{GrossWt: d("10"), MeltingTouch: d("91.6")}},
			"given_items[0].item_name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
				ClientID:   client.ID,
				GivenItems: tt.given,
			})

			require.Error(t, err)
			appErr := apperror.GetAppError(err)
			require.Equal(t, 422, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestCreateReceiptNoGivenItems(t *testing.T) {
	svc, _, _, client := newTestReceiptService(t)

	_, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		ClientID: client.ID,
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestUpdateReceiptAdjustsBalance(t *testing.T) {
	svc, _, repo, client := newTestReceiptService(t)

	created, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		GivenItems: validGiven(),
	})
	require.NoError(t, err)
	require.True(t, client.Balance.Equal(d("8.244")))

	// Returning 5g at 91.6 drops the outstanding balance by 4.58
	updated, err := svc.UpdateReceipt(context.Background(), &UpdateReceiptInput{
		ID:         created.ID,
		GivenItems: validGiven(),
		ReceivedItems: []ReceivedItemInput{
			{ReceivedGold: d("5"), Melting: d("91.6")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, enum.ReceiptStatusComplete, updated.Status)
	assert.True(t, client.Balance.Equal(d("3.664")), "balance %s", client.Balance)
	assert.True(t, updated.ClosingBalance.Equal(d("3.664")))

	require.Len(t, repo.entries, 2)
	assert.True(t, repo.entries[1].Delta.Equal(d("-4.58")))
}

func TestUpdateReceiptNotFound(t *testing.T) {
	svc, _, _, _ := newTestReceiptService(t)

	_, err := svc.UpdateReceipt(context.Background(), &UpdateReceiptInput{
		ID:         uuid.New(),
		GivenItems: validGiven(),
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteReceiptReversesBalance(t *testing.T) {
	svc, _, repo, client := newTestReceiptService(t)

	created, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		GivenItems: validGiven(),
	})
	require.NoError(t, err)
	require.False(t, client.Balance.IsZero())

	require.NoError(t, svc.DeleteReceipt(context.Background(), created.ID))

	assert.True(t, client.Balance.IsZero(), "balance %s", client.Balance)
	require.Len(t, repo.entries, 2)
	assert.Equal(t, enum.EntrySourceReversal, repo.entries[1].Source)
	assert.True(t, repo.entries[1].Delta.Equal(d("-8.244")))
}

func TestVoucherNumbersAreSequential(t *testing.T) {
	svc, _, _, client := newTestReceiptService(t)

	for i := 1; i <= 3; i++ {
		receipt, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
			UserID:     uuid.New(),
			ClientID:   client.ID,
			GivenItems: validGiven(),
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("GS-%06d", i), receipt.VoucherNo)
	}

	next, err := svc.PeekVoucherNo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "GS-000004", next)
}

func TestReceiptsChainBalances(t *testing.T) {
	svc, _, _, client := newTestReceiptService(t)

	first, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		GivenItems: validGiven(),
	})
	require.NoError(t, err)

	second, err := svc.CreateReceipt(context.Background(), &CreateReceiptInput{
		UserID:     uuid.New(),
		ClientID:   client.ID,
		GivenItems: validGiven(),
	})
	require.NoError(t, err)

	// The second receipt opens where the first closed
	assert.True(t, second.OpeningBalance.Equal(first.ClosingBalance))
	assert.True(t, client.Balance.Equal(d("16.488")))
}
