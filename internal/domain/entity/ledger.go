package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/mukilan2815/Goldsmith-managing-sub000/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BalanceEntry is one row of a client's append-only balance ledger. The
// ledger is the authority for balances; Client.Balance is materialized from
// it inside the same transaction that appends an entry. Entries are never
// updated or deleted; corrections are new Reversal or Adjustment rows.
type BalanceEntry struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ClientID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"client_id"`
	ReceiptID    *uuid.UUID       `gorm:"type:uuid;index" json:"receipt_id,omitempty"`
	Source       enum.EntrySource `gorm:"default:0" json:"source"`
	Delta        decimal.Decimal  `gorm:"type:numeric(14,4);not null" json:"delta"`
	BalanceAfter decimal.Decimal  `gorm:"type:numeric(14,4);not null" json:"balance_after"`
	Note         string           `gorm:"size:255" json:"note"`
	CreatedAt    time.Time        `json:"created_at"`

	// Relationships
	Client  Client   `gorm:"foreignKey:ClientID" json:"-"`
	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new balance entry
func (e *BalanceEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BalanceEntry model
func (BalanceEntry) TableName() string {
	return "balance_entries"
}

// VoucherSequence backs the shop's human-readable sequential voucher numbers.
// One row per prefix; NextValue is advanced with the row locked so two
// concurrent receipts can never share a number.
type VoucherSequence struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Prefix    string    `gorm:"size:20;uniqueIndex;not null" json:"prefix"`
	NextValue int64     `gorm:"not null;default:1" json:"next_value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the VoucherSequence model
func (VoucherSequence) TableName() string {
	return "voucher_sequences"
}
