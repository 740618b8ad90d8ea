package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new balance ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) ListByClient(ctx context.Context, clientID uuid.UUID, params *pagination.PaginationParams) ([]entity.BalanceEntry, int64, error) {
	var entries []entity.BalanceEntry
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BalanceEntry{}).Where("client_id = ?", clientID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&entries).Error

	return entries, total, err
}

func (r *ledgerRepository) LastEntry(ctx context.Context, clientID uuid.UUID) (*entity.BalanceEntry, error) {
	var entry entity.BalanceEntry
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *ledgerRepository) AppendAdjustment(ctx context.Context, clientID uuid.UUID, delta decimal.Decimal, note string) (*entity.BalanceEntry, error) {
	var entry *entity.BalanceEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, clientID)
		if err != nil {
			return err
		}

		newBalance := client.Balance.Add(delta)
		entry = &entity.BalanceEntry{
			ClientID:     client.ID,
			Source:       enum.EntrySourceAdjustment,
			Delta:        delta,
			BalanceAfter: newBalance,
			Note:         note,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Client{}).
			Where("id = ?", client.ID).
			Update("balance", newBalance).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
