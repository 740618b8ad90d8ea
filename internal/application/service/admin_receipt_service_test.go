package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdminReceiptRepo is an in-memory AdminReceiptRepository
type fakeAdminReceiptRepo struct {
	receipts map[uuid.UUID]*entity.AdminReceipt
}

func newFakeAdminReceiptRepo() *fakeAdminReceiptRepo {
	return &fakeAdminReceiptRepo{receipts: make(map[uuid.UUID]*entity.AdminReceipt)}
}

func (f *fakeAdminReceiptRepo) Create(ctx context.Context, receipt *entity.AdminReceipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	f.receipts[receipt.ID] = receipt
	return nil
}

func (f *fakeAdminReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error) {
	return f.receipts[id], nil
}

func (f *fakeAdminReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error) {
	return f.receipts[id], nil
}

func (f *fakeAdminReceiptRepo) Update(ctx context.Context, receipt *entity.AdminReceipt) error {
	f.receipts[receipt.ID] = receipt
	return nil
}

func (f *fakeAdminReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.receipts, id)
	return nil
}

func (f *fakeAdminReceiptRepo) List(ctx context.Context, params *domainRepo.AdminReceiptFilterParams) ([]entity.AdminReceipt, int64, error) {
	var out []entity.AdminReceipt
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func newTestAdminReceiptService(t *testing.T) (*AdminReceiptService, *fakeAdminReceiptRepo) {
	t.Helper()
	repo := newFakeAdminReceiptRepo()
	return NewAdminReceiptService(repo, &fakeVoucherRepo{}, "AD"), repo
}

func TestCreateAdminReceipt(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	receipt, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID:        uuid.New(),
		Title:         "Stock melt",
		MetalType:     enum.MetalTypeGold,
		ManualBalance: d("2.5"),
		GivenItems:    validGiven(),
		ReceivedItems: []ReceivedItemInput{
			{ReceivedGold: d("5"), Melting: d("91.6")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "AD-000001", receipt.VoucherNo)
	assert.Equal(t, enum.ReceiptStatusComplete, receipt.Status)
	assert.True(t, receipt.TotalGivenFineWt.Equal(d("8.244")), "got %s", receipt.TotalGivenFineWt)
	assert.True(t, receipt.TotalReceivedFineWt.Equal(d("4.58")), "got %s", receipt.TotalReceivedFineWt)
	require.Len(t, receipt.GivenItems, 1)
	assert.True(t, receipt.GivenItems[0].FineWt.Equal(d("8.244")))
}

func TestCreateAdminReceiptKeepsManualBalance(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	// Items carry a delta of 8.244 but the stored balance is whatever the
	// operator typed; nothing recomputes it.
	receipt, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID:        uuid.New(),
		Title:         "Opening stock",
		ManualBalance: d("2.5"),
		GivenItems:    validGiven(),
	})

	require.NoError(t, err)
	assert.True(t, receipt.ManualBalance.Equal(d("2.5")), "got %s", receipt.ManualBalance)
}

func TestCreateAdminReceiptRequiresTitle(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	_, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID:     uuid.New(),
		GivenItems: validGiven(),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateAdminReceiptValidatesItems(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	_, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID: uuid.New(),
		Title:  "Bad melt",
		GivenItems: []GivenItemInput{
			{ItemName: "Ring", GrossWt: d("10"), MeltingTouch: d("0")},
		},
	})

	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestUpdateAdminReceiptRecomputesTotals(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	created, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID:        uuid.New(),
		Title:         "Stock melt",
		ManualBalance: d("2.5"),
		GivenItems:    validGiven(),
	})
	require.NoError(t, err)
	require.Equal(t, enum.ReceiptStatusIncomplete, created.Status)

	title := "Stock melt, settled"
	updated, err := svc.UpdateAdminReceipt(context.Background(), &UpdateAdminReceiptInput{
		ID:         created.ID,
		Title:      &title,
		GivenItems: validGiven(),
		ReceivedItems: []ReceivedItemInput{
			{ReceivedGold: d("8"), Melting: d("100")},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Stock melt, settled", updated.Title)
	assert.Equal(t, enum.ReceiptStatusComplete, updated.Status)
	assert.True(t, updated.TotalReceivedFineWt.Equal(d("8")), "got %s", updated.TotalReceivedFineWt)
	// Voucher number and manual balance survive the edit untouched.
	assert.Equal(t, "AD-000001", updated.VoucherNo)
	assert.True(t, updated.ManualBalance.Equal(d("2.5")))
}

func TestUpdateAdminReceiptNotFound(t *testing.T) {
	svc, _ := newTestAdminReceiptService(t)

	_, err := svc.UpdateAdminReceipt(context.Background(), &UpdateAdminReceiptInput{
		ID:         uuid.New(),
		GivenItems: validGiven(),
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestDeleteAdminReceipt(t *testing.T) {
	svc, repo := newTestAdminReceiptService(t)

	created, err := svc.CreateAdminReceipt(context.Background(), &CreateAdminReceiptInput{
		UserID:     uuid.New(),
		Title:      "Scrap",
		GivenItems: validGiven(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdminReceipt(context.Background(), created.ID))
	assert.Nil(t, repo.receipts[created.ID])

	err = svc.DeleteAdminReceipt(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
