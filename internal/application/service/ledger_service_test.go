package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/apperror"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedgerService(t *testing.T) (*LedgerService, *fakeClientRepo, *fakeLedgerRepo) {
	t.Helper()
	clients := newFakeClientRepo()
	ledger := &fakeLedgerRepo{clients: clients}
	return NewLedgerService(ledger, clients), clients, ledger
}

func seedClient(clients *fakeClientRepo) *entity.Client {
	client := &entity.Client{ID: uuid.New(), ShopName: "Lakshmi Jewellers", Name: "Ravi", Phone: "9876543210"}
	clients.clients[client.ID] = client
	return client
}

func TestAdjustBalanceAppendsEntry(t *testing.T) {
	svc, clients, ledger := newTestLedgerService(t)
	client := seedClient(clients)

	entry, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		ClientID: client.ID,
		Delta:    d("3.664"),
		Note:     "opening balance carried over",
	})

	require.NoError(t, err)
	assert.True(t, entry.Delta.Equal(d("3.664")))
	assert.True(t, entry.BalanceAfter.Equal(d("3.664")))
	assert.True(t, client.Balance.Equal(d("3.664")))
	assert.Len(t, ledger.entries, 1)
}

func TestAdjustBalanceZeroDelta(t *testing.T) {
	svc, clients, _ := newTestLedgerService(t)
	client := seedClient(clients)

	_, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		ClientID: client.ID,
		Note:     "no-op",
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAdjustBalanceMissingNote(t *testing.T) {
	svc, clients, _ := newTestLedgerService(t)
	client := seedClient(clients)

	_, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		ClientID: client.ID,
		Delta:    d("1"),
	})

	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestAdjustBalanceUnknownClient(t *testing.T) {
	svc, _, _ := newTestLedgerService(t)

	_, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		ClientID: uuid.New(),
		Delta:    d("1"),
		Note:     "who",
	})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestGetStatementNewestFirst(t *testing.T) {
	svc, clients, _ := newTestLedgerService(t)
	client := seedClient(clients)

	_, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{ClientID: client.ID, Delta: d("2"), Note: "first"})
	require.NoError(t, err)
	_, err = svc.AdjustBalance(context.Background(), &AdjustBalanceInput{ClientID: client.ID, Delta: d("-0.5"), Note: "second"})
	require.NoError(t, err)

	stmt, err := svc.GetStatement(context.Background(), client.ID, &pagination.PaginationParams{Page: 1, PerPage: 10})

	require.NoError(t, err)
	require.Len(t, stmt.Entries.Items, 2)
	assert.Equal(t, "second", stmt.Entries.Items[0].Note)
	assert.True(t, stmt.Entries.Items[0].BalanceAfter.Equal(d("1.5")))
	assert.True(t, stmt.Client.Balance.Equal(d("1.5")))
	assert.Equal(t, int64(2), stmt.Entries.Pagination.Total)
}

func TestGetStatementUnknownClient(t *testing.T) {
	svc, _, _ := newTestLedgerService(t)

	_, err := svc.GetStatement(context.Background(), uuid.New(), &pagination.PaginationParams{Page: 1, PerPage: 10})

	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCheckBalanceEmptyLedger(t *testing.T) {
	svc, clients, _ := newTestLedgerService(t)
	client := seedClient(clients)

	check, err := svc.CheckBalance(context.Background(), client.ID)

	require.NoError(t, err)
	assert.True(t, check.Consistent)
	assert.True(t, check.LedgerBalance.IsZero())
}

func TestCheckBalanceDetectsDrift(t *testing.T) {
	svc, clients, _ := newTestLedgerService(t)
	client := seedClient(clients)

	_, err := svc.AdjustBalance(context.Background(), &AdjustBalanceInput{ClientID: client.ID, Delta: d("5"), Note: "seed"})
	require.NoError(t, err)

	// Simulate a materialized balance that fell out of sync with the ledger.
	client.Balance = d("4")

	check, err := svc.CheckBalance(context.Background(), client.ID)

	require.NoError(t, err)
	assert.False(t, check.Consistent)
	assert.True(t, check.Materialized.Equal(d("4")))
	assert.True(t, check.LedgerBalance.Equal(d("5")))
}
