package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// lockClient loads the client row FOR UPDATE so the balance
// read-modify-write below cannot race with a concurrent receipt.
func lockClient(tx *gorm.DB, clientID uuid.UUID) (*entity.Client, error) {
	var client entity.Client
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&client, "id = ?", clientID).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *receiptRepository) CreateWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, receipt.ClientID)
		if err != nil {
			return err
		}

		receipt.OpeningBalance = client.Balance
		receipt.ClosingBalance = client.Balance.Add(delta)

		if err := tx.Create(receipt).Error; err != nil {
			return err
		}

		entry := &entity.BalanceEntry{
			ClientID:     client.ID,
			ReceiptID:    &receipt.ID,
			Source:       enum.EntrySourceReceipt,
			Delta:        delta,
			BalanceAfter: receipt.ClosingBalance,
			Note:         "Receipt " + receipt.VoucherNo,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Client{}).
			Where("id = ?", client.ID).
			Update("balance", receipt.ClosingBalance).Error
	})
}

func (r *receiptRepository) UpdateWithLedger(ctx context.Context, receipt *entity.Receipt, oldDelta, newDelta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, receipt.ClientID)
		if err != nil {
			return err
		}

		// Replace the item lists wholesale; totals were recomputed by the caller.
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.GivenItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.ReceivedItem{}).Error; err != nil {
			return err
		}

		receipt.ClosingBalance = receipt.OpeningBalance.Add(newDelta)

		if err := tx.Omit(clause.Associations).Save(receipt).Error; err != nil {
			return err
		}
		for i := range receipt.GivenItems {
			receipt.GivenItems[i].ID = uuid.Nil
			receipt.GivenItems[i].ReceiptID = receipt.ID
		}
		for i := range receipt.ReceivedItems {
			receipt.ReceivedItems[i].ID = uuid.Nil
			receipt.ReceivedItems[i].ReceiptID = receipt.ID
		}
		if len(receipt.GivenItems) > 0 {
			if err := tx.Create(&receipt.GivenItems).Error; err != nil {
				return err
			}
		}
		if len(receipt.ReceivedItems) > 0 {
			if err := tx.Create(&receipt.ReceivedItems).Error; err != nil {
				return err
			}
		}

		// The ledger stays append-only: the edit is recorded as the
		// difference between the new and old deltas.
		adjustment := newDelta.Sub(oldDelta)
		newBalance := client.Balance.Add(adjustment)

		entry := &entity.BalanceEntry{
			ClientID:     client.ID,
			ReceiptID:    &receipt.ID,
			Source:       enum.EntrySourceReceipt,
			Delta:        adjustment,
			BalanceAfter: newBalance,
			Note:         "Receipt " + receipt.VoucherNo + " amended",
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Client{}).
			Where("id = ?", client.ID).
			Update("balance", newBalance).Error
	})
}

func (r *receiptRepository) DeleteWithLedger(ctx context.Context, receipt *entity.Receipt, delta decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		client, err := lockClient(tx, receipt.ClientID)
		if err != nil {
			return err
		}

		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.GivenItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("receipt_id = ?", receipt.ID).Delete(&entity.ReceivedItem{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.Receipt{}, "id = ?", receipt.ID).Error; err != nil {
			return err
		}

		newBalance := client.Balance.Sub(delta)

		entry := &entity.BalanceEntry{
			ClientID:     client.ID,
			ReceiptID:    &receipt.ID,
			Source:       enum.EntrySourceReversal,
			Delta:        delta.Neg(),
			BalanceAfter: newBalance,
			Note:         "Receipt " + receipt.VoucherNo + " voided",
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Model(&entity.Client{}).
			Where("id = ?", client.ID).
			Update("balance", newBalance).Error
	})
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetByVoucherNo(ctx context.Context, voucherNo string) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "voucher_no = ?", voucherNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("GivenItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("ReceivedItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := applyReceiptFilters(r.db.WithContext(ctx).Model(&entity.Receipt{}),
		params.Search, params.Status, params.MetalType, params.ClientID, params.StartDate, params.EndDate)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := receiptSortColumn(params.SortBy)
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order(sortBy + " " + sortOrder).
		Find(&receipts).Error

	return receipts, total, err
}

func (r *receiptRepository) ListWithCursor(ctx context.Context, params *domainRepo.ReceiptCursorFilterParams) ([]entity.Receipt, error) {
	var receipts []entity.Receipt

	params.Cursor.Validate()
	query := applyReceiptFilters(r.db.WithContext(ctx).Model(&entity.Receipt{}),
		params.Search, params.Status, params.MetalType, params.ClientID, params.StartDate, params.EndDate)

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Client").
		Order("created_at ASC, id ASC").
		Find(&receipts).Error

	return receipts, err
}

func (r *receiptRepository) ListForExport(ctx context.Context, startDate, endDate *time.Time) ([]entity.Receipt, error) {
	var receipts []entity.Receipt

	query := r.db.WithContext(ctx).Model(&entity.Receipt{})
	if startDate != nil {
		query = query.Where("issue_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("issue_date <= ?", *endDate)
	}

	err := query.Preload("Client").
		Order("issue_date ASC, voucher_no ASC").
		Find(&receipts).Error
	return receipts, err
}

// receiptSortColumn maps the user-supplied sort field to a known column.
// The value reaches the ORDER BY clause as raw SQL, so anything outside the
// whitelist falls back to created_at.
func receiptSortColumn(sortBy string) string {
	switch sortBy {
	case "issue_date", "voucher_no", "created_at":
		return sortBy
	}
	return "created_at"
}

func applyReceiptFilters(query *gorm.DB, search string, status *enum.ReceiptStatus, metal *enum.MetalType, clientID *uuid.UUID, startDate, endDate *time.Time) *gorm.DB {
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("voucher_no ILIKE ? OR client_name ILIKE ? OR client_shop_name ILIKE ?", pattern, pattern, pattern)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if metal != nil {
		query = query.Where("metal_type = ?", *metal)
	}
	if clientID != nil {
		query = query.Where("client_id = ?", *clientID)
	}
	if startDate != nil {
		query = query.Where("issue_date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("issue_date <= ?", *endDate)
	}
	return query
}
