package repository

import (
	"context"
	"time"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/entity"
	domainRepo "github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountClients(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Client{}).Count(&count).Error
	return count, err
}

func (r *analyticsRepository) CountReceipts(ctx context.Context) (domainRepo.StatusCountResult, error) {
	var result domainRepo.StatusCountResult

	rows := []struct {
		Status int
		Count  int64
	}{}
	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return result, err
	}

	for _, row := range rows {
		switch row.Status {
		case 0:
			result.Incomplete = row.Count
		case 1:
			result.Complete = row.Count
		}
	}
	return result, nil
}

func (r *analyticsRepository) TotalOutstanding(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&entity.Client{}).
		Select("COALESCE(SUM(balance), 0) as total").
		Scan(&row).Error
	return row.Total, err
}

func (r *analyticsRepository) FineByMetal(ctx context.Context, days int) ([]domainRepo.MetalFineResult, error) {
	var results []domainRepo.MetalFineResult
	since := time.Now().AddDate(0, 0, -days)

	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("metal_type, COALESCE(SUM(total_given_fine_wt), 0) as given_fine, COALESCE(SUM(total_received_fine_wt), 0) as received_fine").
		Where("issue_date >= ?", since).
		Group("metal_type").
		Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) TopClientsByBalance(ctx context.Context, limit int) ([]domainRepo.TopClientResult, error) {
	var results []domainRepo.TopClientResult

	err := r.db.WithContext(ctx).Model(&entity.Client{}).
		Select("id as client_id, shop_name, name, balance").
		Where("balance <> 0").
		Order("balance DESC").
		Limit(limit).
		Scan(&results).Error

	return results, err
}

func (r *analyticsRepository) DailyGivenFine(ctx context.Context, days int) ([]domainRepo.DailyFineResult, error) {
	var results []domainRepo.DailyFineResult
	since := time.Now().AddDate(0, 0, -days)

	err := r.db.WithContext(ctx).Model(&entity.Receipt{}).
		Select("issue_date as date, COALESCE(SUM(total_given_fine_wt), 0) as given_fine").
		Where("issue_date >= ?", since).
		Group("issue_date").
		Order("issue_date ASC").
		Scan(&results).Error

	return results, err
}
