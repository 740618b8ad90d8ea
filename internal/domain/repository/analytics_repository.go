package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCountResult represents receipt counts grouped by status
type StatusCountResult struct {
	Incomplete int64
	Complete   int64
}

// MetalFineResult represents fine weight movement aggregated per metal
type MetalFineResult struct {
	MetalType    int
	GivenFine    decimal.Decimal
	ReceivedFine decimal.Decimal
}

// TopClientResult represents a client ranked by outstanding balance
type TopClientResult struct {
	ClientID uuid.UUID
	ShopName string
	Name     string
	Balance  decimal.Decimal
}

// DailyFineResult represents fine weight issued on a single day
type DailyFineResult struct {
	Date      time.Time
	GivenFine decimal.Decimal
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// CountClients returns the number of active clients
	CountClients(ctx context.Context) (int64, error)

	// CountReceipts returns receipt counts grouped by status
	CountReceipts(ctx context.Context) (StatusCountResult, error)

	// TotalOutstanding returns the sum of all client balances
	TotalOutstanding(ctx context.Context) (decimal.Decimal, error)

	// FineByMetal returns fine weight given/received per metal over the last N days
	FineByMetal(ctx context.Context, days int) ([]MetalFineResult, error)

	// TopClientsByBalance returns clients with the largest outstanding balances
	TopClientsByBalance(ctx context.Context, limit int) ([]TopClientResult, error)

	// DailyGivenFine returns fine weight issued per day for the last N days
	DailyGivenFine(ctx context.Context, days int) ([]DailyFineResult, error)
}
