package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client represents a jewelry-shop client whose metal account the shop tracks.
// Balance is grams of fine-metal equivalent owed to the shop; it is a
// materialized view of the client's balance ledger and is only ever written
// inside the same transaction that appends a ledger entry.
type Client struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ShopName  string          `gorm:"size:255;not null" json:"shop_name"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Phone     string          `gorm:"size:50;not null" json:"phone"`
	Address   string          `gorm:"type:text;not null" json:"address"`
	Email     *string         `gorm:"size:255" json:"email,omitempty"`
	Balance   decimal.Decimal `gorm:"type:numeric(14,4);not null;default:0" json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	User     User           `gorm:"foreignKey:UserID" json:"-"`
	Receipts []Receipt      `gorm:"foreignKey:ClientID" json:"-"`
	Entries  []BalanceEntry `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
