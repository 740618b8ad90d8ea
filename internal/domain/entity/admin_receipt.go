package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdminReceipt is the simplified receipt variant kept by the shop itself
// rather than against a client account. It shares the same derived
// arithmetic as Receipt, but never touches the balance ledger: its closing
// balance is entered manually. The several near-identical admin receipt
// variants of the old front end collapse into this one entity.
type AdminReceipt struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	VoucherNo string             `gorm:"size:100;unique;not null" json:"voucher_no"`
	Title     string             `gorm:"size:255;not null" json:"title"`
	MetalType enum.MetalType     `gorm:"default:0" json:"metal_type"`
	IssueDate time.Time          `gorm:"type:date;not null" json:"issue_date"`
	Status    enum.ReceiptStatus `gorm:"default:0" json:"status"`
	Notes     string             `gorm:"type:text" json:"notes"`

	ManualBalance decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"manual_balance"`

	TotalGrossWt        decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"total_gross_wt"`
	TotalStoneWt        decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"total_stone_wt"`
	TotalNetWt          decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"total_net_wt"`
	TotalGivenFineWt    decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"total_given_fine_wt"`
	TotalReceivedFineWt decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"total_received_fine_wt"`
	TotalStoneAmt       int64           `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User          User                `gorm:"foreignKey:UserID" json:"-"`
	GivenItems    []AdminGivenItem    `gorm:"foreignKey:AdminReceiptID" json:"given_items,omitempty"`
	ReceivedItems []AdminReceivedItem `gorm:"foreignKey:AdminReceiptID" json:"received_items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (a AdminReceipt) MarshalJSON() ([]byte, error) {
	type Alias AdminReceipt
	return json.Marshal(&struct {
		Alias
		TotalStoneAmt float64 `json:"total_stone_amt"`
	}{
		Alias:         Alias(a),
		TotalStoneAmt: float64(a.TotalStoneAmt) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new admin receipt
func (a *AdminReceipt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdminReceipt model
func (AdminReceipt) TableName() string {
	return "admin_receipts"
}

// AdminGivenItem is a given line on an admin receipt.
type AdminGivenItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AdminReceiptID uuid.UUID       `gorm:"type:uuid;not null;index" json:"admin_receipt_id"`
	Position       int             `gorm:"not null" json:"position"`
	ItemName       string          `gorm:"size:255;not null" json:"item_name"`
	Tag            string          `gorm:"size:100" json:"tag"`
	GrossWt        decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"gross_wt"`
	StoneWt        decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"stone_wt"`
	MeltingTouch   decimal.Decimal `gorm:"type:numeric(7,4);not null" json:"melting_touch"`
	NetWt          decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"net_wt"`
	FineWt         decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"fine_wt"`
	StoneAmt       int64           `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	ItemDate       *time.Time      `gorm:"type:date" json:"item_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	AdminReceipt AdminReceipt `gorm:"foreignKey:AdminReceiptID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (g AdminGivenItem) MarshalJSON() ([]byte, error) {
	type Alias AdminGivenItem
	return json.Marshal(&struct {
		Alias
		StoneAmt float64 `json:"stone_amt"`
	}{
		Alias:    Alias(g),
		StoneAmt: float64(g.StoneAmt) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new admin given item
func (g *AdminGivenItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdminGivenItem model
func (AdminGivenItem) TableName() string {
	return "admin_given_items"
}

// AdminReceivedItem is a received line on an admin receipt.
type AdminReceivedItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AdminReceiptID uuid.UUID       `gorm:"type:uuid;not null;index" json:"admin_receipt_id"`
	Position       int             `gorm:"not null" json:"position"`
	ReceivedGold   decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"received_gold"`
	Melting        decimal.Decimal `gorm:"type:numeric(7,4);not null" json:"melting"`
	FineWt         decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"fine_wt"`
	ItemDate       *time.Time      `gorm:"type:date" json:"item_date,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	AdminReceipt AdminReceipt `gorm:"foreignKey:AdminReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new admin received item
func (r *AdminReceivedItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AdminReceivedItem model
func (AdminReceivedItem) TableName() string {
	return "admin_received_items"
}
