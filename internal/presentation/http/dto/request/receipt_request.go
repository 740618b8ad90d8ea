package request

import "github.com/shopspring/decimal"

// GivenItemRequest is a given line as entered on the receipt form. Derived
// columns shown by the form (net weight, fine weight, totals) are not part
// of the request; the server recomputes them.
type GivenItemRequest struct {
	ItemName     string          `json:"item_name" binding:"required,max=255"`
	Tag          string          `json:"tag" binding:"max=100"`
	GrossWt      decimal.Decimal `json:"gross_wt" binding:"required"`
	StoneWt      decimal.Decimal `json:"stone_wt"`
	MeltingTouch decimal.Decimal `json:"melting_touch" binding:"required"`
	StoneAmt     float64         `json:"stone_amt" binding:"gte=0"`
	ItemDate     *string         `json:"item_date"` // YYYY-MM-DD
}

// ReceivedItemRequest is a received line as entered. A fully blank line is
// accepted and dropped rather than rejected.
type ReceivedItemRequest struct {
	ReceivedGold decimal.Decimal `json:"received_gold"`
	Melting      decimal.Decimal `json:"melting"`
	ItemDate     *string         `json:"item_date"` // YYYY-MM-DD
}

// CreateReceiptRequest represents a create receipt request
type CreateReceiptRequest struct {
	ClientID      string                `json:"client_id" binding:"required,uuid"`
	MetalType     string                `json:"metal_type" binding:"omitempty,oneof=Gold Silver"`
	IssueDate     string                `json:"issue_date"` // YYYY-MM-DD, defaults to today
	GivenItems    []GivenItemRequest    `json:"given_items" binding:"required,min=1,dive"`
	ReceivedItems []ReceivedItemRequest `json:"received_items" binding:"dive"`
}

// UpdateReceiptRequest represents an update receipt request. Item lists are
// replaced wholesale.
type UpdateReceiptRequest struct {
	MetalType     *string               `json:"metal_type" binding:"omitempty,oneof=Gold Silver"`
	IssueDate     *string               `json:"issue_date"` // YYYY-MM-DD
	GivenItems    []GivenItemRequest    `json:"given_items" binding:"required,min=1,dive"`
	ReceivedItems []ReceivedItemRequest `json:"received_items" binding:"dive"`
}
