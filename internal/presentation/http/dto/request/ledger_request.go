package request

import "github.com/shopspring/decimal"

// AdjustBalanceRequest represents a manual balance adjustment request
type AdjustBalanceRequest struct {
	Delta decimal.Decimal `json:"delta" binding:"required"`
	Note  string          `json:"note" binding:"required,min=3,max=500"`
}
