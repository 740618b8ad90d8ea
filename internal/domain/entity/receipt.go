package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Receipt records one exchange of metal between the shop and a client:
// given lines (metal handed to the goldsmith) and received lines (finished
// metal handed back). All derived columns are recomputed server-side from
// the raw entered values on every write; client-supplied derivations are
// ignored. OpeningBalance/ClosingBalance are explicit fields so the balance
// carry-forward never appears in the item lists.
type Receipt struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	VoucherNo string             `gorm:"size:100;unique;not null" json:"voucher_no"`
	MetalType enum.MetalType     `gorm:"default:0" json:"metal_type"`
	IssueDate time.Time          `gorm:"type:date;not null" json:"issue_date"`
	Status    enum.ReceiptStatus `gorm:"default:0" json:"status"`

	// Client snapshot taken at issue time, kept even if the client record
	// changes later.
	ClientShopName string `gorm:"size:255;not null" json:"client_shop_name"`
	ClientName     string `gorm:"size:255;not null" json:"client_name"`
	ClientPhone    string `gorm:"size:50" json:"client_phone"`

	OpeningBalance decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"opening_balance"`
	ClosingBalance decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"closing_balance"`

	// Denormalized aggregate totals over the item lists.
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
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Client        *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	GivenItems    []GivenItem    `gorm:"foreignKey:ReceiptID" json:"given_items,omitempty"`
	ReceivedItems []ReceivedItem `gorm:"foreignKey:ReceiptID" json:"received_items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (r Receipt) MarshalJSON() ([]byte, error) {
	type Alias Receipt
	return json.Marshal(&struct {
		Alias
		TotalStoneAmt float64 `json:"total_stone_amt"`
	}{
		Alias:         Alias(r),
		TotalStoneAmt: float64(r.TotalStoneAmt) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// GivenItem is a line of metal handed to the goldsmith. NetWt and FineWt are
// derived (net = gross - stone, fine = net * touch / 100); StoneAmt is a
// manually entered money amount, never derived.
type GivenItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Position     int             `gorm:"not null" json:"position"`
	ItemName     string          `gorm:"size:255;not null" json:"item_name"`
	Tag          string          `gorm:"size:100" json:"tag"`
	GrossWt      decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"gross_wt"`
	StoneWt      decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"stone_wt"`
	MeltingTouch decimal.Decimal `gorm:"type:numeric(7,4);not null" json:"melting_touch"`
	NetWt        decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"net_wt"`
	FineWt       decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"fine_wt"`
	StoneAmt     int64           `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	ItemDate     *time.Time      `gorm:"type:date" json:"item_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (g GivenItem) MarshalJSON() ([]byte, error) {
	type Alias GivenItem
	return json.Marshal(&struct {
		Alias
		StoneAmt float64 `json:"stone_amt"`
	}{
		Alias:    Alias(g),
		StoneAmt: float64(g.StoneAmt) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new given item
func (g *GivenItem) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GivenItem model
func (GivenItem) TableName() string {
	return "given_items"
}

// ReceivedItem is a line of finished metal handed back to the client.
// FineWt = receivedGold * melting / 100.
type ReceivedItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"receipt_id"`
	Position     int             `gorm:"not null" json:"position"`
	ReceivedGold decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"received_gold"`
	Melting      decimal.Decimal `gorm:"type:numeric(7,4);not null" json:"melting"`
	FineWt       decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"fine_wt"`
	ItemDate     *time.Time      `gorm:"type:date" json:"item_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new received item
func (r *ReceivedItem) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceivedItem model
func (ReceivedItem) TableName() string {
	return "received_items"
}
