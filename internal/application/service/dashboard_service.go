package service

import (
	"context"

	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates shop-wide figures for the dashboard page.
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// MetalSummary is fine weight movement for one metal.
type MetalSummary struct {
	MetalType    enum.MetalType  `json:"metal_type"`
	GivenFine    decimal.Decimal `json:"given_fine"`
	ReceivedFine decimal.Decimal `json:"received_fine"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

// TopClient is a client ranked by outstanding balance.
type TopClient struct {
	ClientID string          `json:"client_id"`
	ShopName string          `json:"shop_name"`
	Name     string          `json:"name"`
	Balance  decimal.Decimal `json:"balance"`
}

// DailyFine is fine weight issued on one day.
type DailyFine struct {
	Date      string          `json:"date"`
	GivenFine decimal.Decimal `json:"given_fine"`
}

// DashboardStats is the dashboard payload.
type DashboardStats struct {
	TotalClients       int64           `json:"total_clients"`
	TotalReceipts      int64           `json:"total_receipts"`
	IncompleteReceipts int64           `json:"incomplete_receipts"`
	CompleteReceipts   int64           `json:"complete_receipts"`
	TotalOutstanding   decimal.Decimal `json:"total_outstanding"`
	MetalSummaries     []MetalSummary  `json:"metal_summaries"`
	TopClients         []TopClient     `json:"top_clients"`
	DailyGivenFine     []DailyFine     `json:"daily_given_fine"`
}

const (
	dashboardWindowDays = 30
	topClientLimit      = 5
)

// GetStats assembles the dashboard
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	clientCount, err := s.analyticsRepo.CountClients(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalClients = clientCount

	counts, err := s.analyticsRepo.CountReceipts(ctx)
	if err != nil {
		return nil, err
	}
	stats.IncompleteReceipts = counts.Incomplete
	stats.CompleteReceipts = counts.Complete
	stats.TotalReceipts = counts.Incomplete + counts.Complete

	outstanding, err := s.analyticsRepo.TotalOutstanding(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOutstanding = outstanding

	metalRows, err := s.analyticsRepo.FineByMetal(ctx, dashboardWindowDays)
	if err != nil {
		return nil, err
	}
	stats.MetalSummaries = make([]MetalSummary, len(metalRows))
	for i, row := range metalRows {
		stats.MetalSummaries[i] = MetalSummary{
			MetalType:    enum.MetalType(row.MetalType),
			GivenFine:    row.GivenFine,
			ReceivedFine: row.ReceivedFine,
			Outstanding:  row.GivenFine.Sub(row.ReceivedFine),
		}
	}

	topRows, err := s.analyticsRepo.TopClientsByBalance(ctx, topClientLimit)
	if err != nil {
		return nil, err
	}
	stats.TopClients = make([]TopClient, len(topRows))
	for i, row := range topRows {
		stats.TopClients[i] = TopClient{
			ClientID: row.ClientID.String(),
			ShopName: row.ShopName,
			Name:     row.Name,
			Balance:  row.Balance,
		}
	}

	dailyRows, err := s.analyticsRepo.DailyGivenFine(ctx, dashboardWindowDays)
	if err != nil {
		return nil, err
	}
	stats.DailyGivenFine = make([]DailyFine, len(dailyRows))
	for i, row := range dailyRows {
		stats.DailyGivenFine[i] = DailyFine{
			Date:      row.Date.Format("2006-01-02"),
			GivenFine: row.GivenFine,
		}
	}

	return stats, nil
}
