package models

import (
	"time"

	"gorm.io/gorm"
)

// Buyer is reference data used to pre-fill dispatch consignee defaults.
type Buyer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	Addresses []BuyerAddress `gorm:"foreignKey:BuyerID" json:"addresses"`
	Contacts  []BuyerContact `gorm:"foreignKey:BuyerID" json:"contacts"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Buyer model
func (Buyer) TableName() string {
	return "buyers"
}

// BuyerAddress is one shipping address of a buyer.
type BuyerAddress struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BuyerID   uint   `gorm:"not null;index" json:"buyer_id"`
	Address   string `gorm:"not null" json:"address"`
	IsDefault bool   `gorm:"not null;default:false" json:"is_default"`
}

// TableName specifies the table name for the BuyerAddress model
func (BuyerAddress) TableName() string {
	return "buyer_addresses"
}

// BuyerContact is one contact person of a buyer.
type BuyerContact struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	BuyerID   uint   `gorm:"not null;index" json:"buyer_id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsDefault bool   `gorm:"not null;default:false" json:"is_default"`
}

// TableName specifies the table name for the BuyerContact model
func (BuyerContact) TableName() string {
	return "buyer_contacts"
}

// DefaultAddress returns the buyer's default address, falling back to the
// first one; empty string when the buyer has no addresses.
func (b *Buyer) DefaultAddress() string {
	for i := range b.Addresses {
		if b.Addresses[i].IsDefault {
			return b.Addresses[i].Address
		}
	}
	if len(b.Addresses) > 0 {
		return b.Addresses[0].Address
	}
	return ""
}

// DefaultContact returns the buyer's default contact, falling back to the
// first one; nil when the buyer has no contacts.
func (b *Buyer) DefaultContact() *BuyerContact {
	for i := range b.Contacts {
		if b.Contacts[i].IsDefault {
			return &b.Contacts[i]
		}
	}
	if len(b.Contacts) > 0 {
		return &b.Contacts[0]
	}
	return nil
}
