package models

import (
	"time"

	"gorm.io/gorm"
)

// Plan approval values used on Style process plans
const (
	PlanPending  = "Pending"
	PlanApproved = "Approved"
)

// PP-meeting status values on Style
const (
	MeetingNotHeld   = "Not Held"
	MeetingCompleted = "Completed"
)

// Job represents a production batch owning one or more styles
type Job struct {
	ID                uint               `gorm:"primaryKey" json:"id"`
	BatchNo           string             `gorm:"uniqueIndex;not null" json:"batch_no"`
	Merchandiser      string             `json:"merchandiser"`
	Season            string             `json:"season"`
	Status            string             `gorm:"not null;default:'Open'" json:"status"` // Open, Closed
	Styles            []Style            `gorm:"foreignKey:JobID" json:"styles"`
	WorkOrderRequests []WorkOrderRequest `gorm:"foreignKey:JobID" json:"work_order_requests"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Job model
func (Job) TableName() string {
	return "jobs"
}

// Style represents one garment variant within a Job
type Style struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	JobID     uint       `gorm:"not null;index" json:"job_id"`
	StyleNo   string     `gorm:"not null" json:"style_no"`
	Buyer     string     `gorm:"not null" json:"buyer"`
	Factory   string     `json:"factory"`
	PONumber  string     `json:"po_number"`
	Quantity  int        `json:"quantity"`
	OrderDate *time.Time `json:"order_date"`
	ShipDate  *time.Time `json:"ship_date"`

	// Per-process plan approvals gate the tracker views
	PlanSampling  string `gorm:"not null;default:'Pending'" json:"plan_sampling"`
	PlanFabric    string `gorm:"not null;default:'Pending'" json:"plan_fabric"`
	PlanTrims     string `gorm:"not null;default:'Pending'" json:"plan_trims"`
	PlanCutting   string `gorm:"not null;default:'Pending'" json:"plan_cutting"`
	PlanStitching string `gorm:"not null;default:'Pending'" json:"plan_stitching"`
	PlanWashing   string `gorm:"not null;default:'Pending'" json:"plan_washing"`
	PlanFinishing string `gorm:"not null;default:'Pending'" json:"plan_finishing"`

	MeetingStatus string     `gorm:"not null;default:'Not Held'" json:"meeting_status"` // Not Held, Completed
	MeetingDate   *time.Time `json:"meeting_date"`

	SamplingItems []SamplingItem `gorm:"foreignKey:StyleID" json:"sampling_items"`
	BOMItems      []BOMItem      `gorm:"foreignKey:StyleID" json:"bom_items"`
	PPMeeting     *PPMeeting     `gorm:"foreignKey:StyleID" json:"pp_meeting,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Style model
func (Style) TableName() string {
	return "styles"
}

// PlanFor returns the plan approval value for a named process group.
// Unknown groups report Pending so they never pass an approval gate.
func (s *Style) PlanFor(group string) string {
	switch group {
	case ProcessSampling:
		return s.PlanSampling
	case ProcessFabric, ProcessLining:
		return s.PlanFabric
	case ProcessTrims, ProcessAccessory:
		return s.PlanTrims
	case ProcessCutting:
		return s.PlanCutting
	case ProcessStitching:
		return s.PlanStitching
	case ProcessWashing:
		return s.PlanWashing
	case ProcessFinishing:
		return s.PlanFinishing
	default:
		return PlanPending
	}
}
