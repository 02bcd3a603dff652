package models

import (
	"time"

	"gorm.io/gorm"
)

// Process groups a BOM line or tracker row can belong to
const (
	ProcessSampling  = "Sampling"
	ProcessFabric    = "Fabric"
	ProcessLining    = "Lining"
	ProcessTrims     = "Trims"
	ProcessAccessory = "Accessories"
	ProcessCutting   = "Cutting"
	ProcessStitching = "Stitching"
	ProcessWashing   = "Washing"
	ProcessFinishing = "Finishing"
)

// BOMItem represents a sourced material/component line within a Style.
// SupplierRef is the join key to parcel contents, same as SamRef on samples.
type BOMItem struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	StyleID          uint           `gorm:"not null;index" json:"style_id"`
	SupplierRef      string         `gorm:"index;not null" json:"supplier_ref"`
	MaterialName     string         `gorm:"not null" json:"material_name"`
	Supplier         string         `json:"supplier"`
	ProcessGroup     string         `gorm:"not null;default:'Fabric'" json:"process_group"` // Fabric, Lining, Trims, Accessories
	Status           string         `gorm:"not null;default:'Pending'" json:"status"`
	LabStatus        string         `gorm:"not null;default:'Not Sent'" json:"lab_status"`
	ApprovalRequired bool           `gorm:"not null;default:true" json:"approval_required"`
	LabRequired      bool           `gorm:"not null;default:false" json:"lab_required"`
	IsApproved       bool           `gorm:"not null;default:false" json:"is_approved"`
	FeedbackNote     string         `json:"feedback_note"`
	FeedbackFrom     string         `json:"feedback_from"`
	FeedbackDate     *time.Time     `json:"feedback_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the BOMItem model
func (BOMItem) TableName() string {
	return "bom_items"
}
