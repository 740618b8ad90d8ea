package request

import "github.com/shopspring/decimal"

// CreateAdminReceiptRequest represents a create admin receipt request
type CreateAdminReceiptRequest struct {
	Title         string                `json:"title" binding:"required,min=2,max=255"`
	MetalType     string                `json:"metal_type" binding:"omitempty,oneof=Gold Silver"`
	IssueDate     string                `json:"issue_date"` // YYYY-MM-DD, defaults to today
	Notes         string                `json:"notes"`
	ManualBalance decimal.Decimal       `json:"manual_balance"`
	GivenItems    []GivenItemRequest    `json:"given_items" binding:"required,min=1,dive"`
	ReceivedItems []ReceivedItemRequest `json:"received_items" binding:"dive"`
}

// UpdateAdminReceiptRequest represents an update admin receipt request
type UpdateAdminReceiptRequest struct {
	Title         *string               `json:"title" binding:"omitempty,min=2,max=255"`
	MetalType     *string               `json:"metal_type" binding:"omitempty,oneof=Gold Silver"`
	IssueDate     *string               `json:"issue_date"` // YYYY-MM-DD
	Notes         *string               `json:"notes"`
	ManualBalance *decimal.Decimal      `json:"manual_balance"`
	GivenItems    []GivenItemRequest    `json:"given_items" binding:"required,min=1,dive"`
	ReceivedItems []ReceivedItemRequest `json:"received_items" binding:"dive"`
}
