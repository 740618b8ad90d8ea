package repository

import (
	"context"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/mukilan2815/Goldsmith-managing-sub000/pkg/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher sequence repository
func NewVoucherRepository(db *gorm.DB) domainRepo.VoucherRepository {
	return &voucherRepository{db: db}
}

// Next advances the sequence under a row lock so concurrent receipt
// submissions cannot be handed the same number.
func (r *voucherRepository) Next(ctx context.Context, prefix string) (string, error) {
	var voucherNo string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq entity.VoucherSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("prefix = ?", prefix).
			First(&seq).Error
		if err != nil {
			return err
		}

		voucherNo = utils.FormatVoucherNo(seq.Prefix, seq.NextValue)

		return tx.Model(&entity.VoucherSequence{}).
			Where("id = ?", seq.ID).
			Update("next_value", seq.NextValue+1).Error
	})

	return voucherNo, err
}

// Peek reads the sequence without advancing it. The returned number is only
// a preview for the entry form; Next may still hand out a later value.
func (r *voucherRepository) Peek(ctx context.Context, prefix string) (string, error) {
	var seq entity.VoucherSequence
	err := r.db.WithContext(ctx).Where("prefix = ?", prefix).First(&seq).Error
	if err != nil {
		return "", err
	}
	return utils.FormatVoucherNo(seq.Prefix, seq.NextValue), nil
}
