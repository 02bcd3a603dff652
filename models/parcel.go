package models

import (
	"time"

	"gorm.io/gorm"
)

// Parcel status values
const (
	ParcelSent     = "Sent"
	ParcelReceived = "Received"
)

// PlaceholderValue is stored for courier/tracking when shipment info is
// skipped at dispatch time.
const PlaceholderValue = "-"

// Parcel represents one outbound shipment bundling samples, materials and
// documents to a buyer. Created once at dispatch; never deleted.
type Parcel struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	ParcelNo        string         `gorm:"uniqueIndex;not null" json:"parcel_no"`
	Buyer           string         `gorm:"not null" json:"buyer"`
	ConsigneeName   string         `gorm:"not null" json:"consignee_name"`
	ConsigneeAddr   string         `gorm:"not null" json:"consignee_addr"`
	Courier         string         `json:"courier"`
	TrackingNo      string         `json:"tracking_no"`
	SentDate        time.Time      `json:"sent_date"`
	ReceivedDate    *time.Time     `json:"received_date"`
	Status          string         `gorm:"not null;default:'Sent'" json:"status"` // Sent, Received
	PendingTracking bool           `gorm:"not null;default:false" json:"pending_tracking"`
	Items           []ParcelItem   `gorm:"foreignKey:ParcelID" json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Parcel model
func (Parcel) TableName() string {
	return "parcels"
}

// ParcelItem is one line inside a Parcel: either a structured sampling
// reference (traceable back to a sampling/BOM row via the origin fields)
// or a free-form other item. The textual ItemRef is what the aggregation
// layer matches against; origin ids exist so a line is unambiguous even
// when two items share a reference string.
type ParcelItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	ParcelID  uint    `gorm:"not null;index" json:"parcel_id"`
	Position  int     `gorm:"not null" json:"position"`
	ItemRef   string  `gorm:"index;not null" json:"item_ref"`
	Category  string  `json:"category"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	UnitValue float64 `json:"unit_value"` // declared customs value per unit

	// Origin of a traceable line; all zero/empty for free-form items
	OriginKind    string `json:"origin_kind"` // sampling, material, development or empty
	OriginJobID   uint   `json:"origin_job_id"`
	OriginStyleID uint   `json:"origin_style_id"`
	OriginItemID  uint   `json:"origin_item_id"`
}

// TableName specifies the table name for the ParcelItem model
func (ParcelItem) TableName() string {
	return "parcel_items"
}

// IsTraceable reports whether the line points back to a real sampling/BOM
// row rather than a free-form other item.
func (p *ParcelItem) IsTraceable() bool {
	return p.OriginKind != ""
}
