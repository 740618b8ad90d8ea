package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type adminReceiptRepository struct {
	db *gorm.DB
}

// NewAdminReceiptRepository creates a new admin receipt repository
func NewAdminReceiptRepository(db *gorm.DB) domainRepo.AdminReceiptRepository {
	return &adminReceiptRepository{db: db}
}

func (r *adminReceiptRepository) Create(ctx context.Context, receipt *entity.AdminReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *adminReceiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error) {
	var receipt entity.AdminReceipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *adminReceiptRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.AdminReceipt, error) {
	var receipt entity.AdminReceipt
	err := r.db.WithContext(ctx).
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

// Update replaces the receipt row and both item lists in one transaction.
func (r *adminReceiptRepository) Update(ctx context.Context, receipt *entity.AdminReceipt) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_receipt_id = ?", receipt.ID).Delete(&entity.AdminGivenItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("admin_receipt_id = ?", receipt.ID).Delete(&entity.AdminReceivedItem{}).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(receipt).Error; err != nil {
			return err
		}
		for i := range receipt.GivenItems {
			receipt.GivenItems[i].ID = uuid.Nil
			receipt.GivenItems[i].AdminReceiptID = receipt.ID
		}
		for i := range receipt.ReceivedItems {
			receipt.ReceivedItems[i].ID = uuid.Nil
			receipt.ReceivedItems[i].AdminReceiptID = receipt.ID
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
		return nil
	})
}

func (r *adminReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("admin_receipt_id = ?", id).Delete(&entity.AdminGivenItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("admin_receipt_id = ?", id).Delete(&entity.AdminReceivedItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.AdminReceipt{}, "id = ?", id).Error
	})
}

func (r *adminReceiptRepository) List(ctx context.Context, params *domainRepo.AdminReceiptFilterParams) ([]entity.AdminReceipt, int64, error) {
	var receipts []entity.AdminReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AdminReceipt{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where("voucher_no ILIKE ? OR title ILIKE ?", pattern, pattern)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.MetalType != nil {
		query = query.Where("metal_type = ?", *params.MetalType)
	}
	if params.StartDate != nil {
		query = query.Where("issue_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("issue_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&receipts).Error

	return receipts, total, err
}
