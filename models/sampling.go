package models

import (
	"time"

	"gorm.io/gorm"
)

// Lifecycle status values shared by sampling items, BOM items and
// development samples
const (
	StatusPending   = "Pending"
	StatusSubmitted = "Submitted"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
)

// Lab status values
const (
	LabNotSent  = "Not Sent"
	LabSent     = "Sent"
	LabTesting  = "Testing"
	LabApproved = "Approved"
	LabRejected = "Rejected"
)

// Feedback outcome values
const (
	OutcomeApproved  = "Approved"
	OutcomeRejected  = "Rejected"
	OutcomeCommented = "Commented"
)

// WIP stages in their fixed production order. Dispatched is terminal and
// only ever set by a parcel dispatch.
const (
	StageNotStarted       = "Not Started"
	StagePatternMaking    = "Pattern Making"
	StageSampleCut        = "Sample Cut"
	StageStitching        = "Stitching"
	StageWashing          = "Washing"
	StageFinishing        = "Finishing"
	StageReadyForDispatch = "Ready for Dispatch"
	StageDispatched       = "Dispatched"
)

// WIPStages lists every WIP stage in production order.
var WIPStages = []string{
	StageNotStarted,
	StagePatternMaking,
	StageSampleCut,
	StageStitching,
	StageWashing,
	StageFinishing,
	StageReadyForDispatch,
	StageDispatched,
}

// SamplingItem represents a physical sample request within a Style.
// SamRef is the only join key to parcel contents.
type SamplingItem struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	StyleID          uint           `gorm:"not null;index" json:"style_id"`
	SamRef           string         `gorm:"uniqueIndex;not null" json:"sam_ref"`
	SampleType       string         `json:"sample_type"` // Proto, Fit, PP, Shipment...
	ApprovalRequired bool           `gorm:"not null;default:true" json:"approval_required"`
	LabRequired      bool           `gorm:"not null;default:false" json:"lab_required"`
	IsApproved       bool           `gorm:"not null;default:false" json:"is_approved"`
	Status           string         `gorm:"not null;default:'Pending'" json:"status"`
	LabStatus        string         `gorm:"not null;default:'Not Sent'" json:"lab_status"`
	CurrentStage     string         `gorm:"not null;default:'Not Started'" json:"current_stage"`
	FeedbackNote     string         `json:"feedback_note"`
	FeedbackFrom     string         `json:"feedback_from"`
	FeedbackDate     *time.Time     `json:"feedback_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the SamplingItem model
func (SamplingItem) TableName() string {
	return "sampling_items"
}

// DevelopmentSample is structurally a SamplingItem owned directly, with no
// parent Job or Style; it represents R&D work.
type DevelopmentSample struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	SamRef           string         `gorm:"uniqueIndex;not null" json:"sam_ref"`
	SampleType       string         `json:"sample_type"`
	Buyer            string         `json:"buyer"`
	ApprovalRequired bool           `gorm:"not null;default:true" json:"approval_required"`
	LabRequired      bool           `gorm:"not null;default:false" json:"lab_required"`
	IsApproved       bool           `gorm:"not null;default:false" json:"is_approved"`
	Status           string         `gorm:"not null;default:'Pending'" json:"status"`
	LabStatus        string         `gorm:"not null;default:'Not Sent'" json:"lab_status"`
	CurrentStage     string         `gorm:"not null;default:'Not Started'" json:"current_stage"`
	FeedbackNote     string         `json:"feedback_note"`
	FeedbackFrom     string         `json:"feedback_from"`
	FeedbackDate     *time.Time     `json:"feedback_date"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the DevelopmentSample model
func (DevelopmentSample) TableName() string {
	return "development_samples"
}
