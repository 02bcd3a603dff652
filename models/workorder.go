package models

import (
	"time"

	"gorm.io/gorm"
)

// Issued work order status
const (
	WorkOrderIssued = "Issued"
)

// Demand item kinds feeding work-order issuance
const (
	DemandKindRequest = "request" // raw WorkOrderRequest on a Job
	DemandKindCutting = "cutting" // approved cutting-plan line
)

// WorkOrderRequest is a raw request for an external production service
// attached to a Job. Until bundled into an IssuedWorkOrder it is
// outstanding demand; demand itself is derived, never stored.
type WorkOrderRequest struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	JobID       uint           `gorm:"not null;index" json:"job_id"`
	Stage       string         `gorm:"not null" json:"stage"` // Cutting, Stitching, Washing...
	Description string         `gorm:"not null" json:"description"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	TargetDate  *time.Time     `json:"target_date"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the WorkOrderRequest model
func (WorkOrderRequest) TableName() string {
	return "work_order_requests"
}

// IssuedWorkOrder bundles one or more demand items for a vendor. Issued
// work orders are append-only; their item ids are what exclude demand from
// future computations.
type IssuedWorkOrder struct {
	ID         uint                  `gorm:"primaryKey" json:"id"`
	WONumber   string                `gorm:"uniqueIndex;not null" json:"wo_number"`
	Vendor     string                `gorm:"not null" json:"vendor"`
	Stage      string                `gorm:"not null" json:"stage"`
	Status     string                `gorm:"not null;default:'Issued'" json:"status"`
	TargetDate *time.Time            `json:"target_date"`
	TotalQty   int                   `gorm:"not null" json:"total_qty"`
	Items      []IssuedWorkOrderItem `gorm:"foreignKey:WorkOrderID" json:"items"`
	CreatedAt  time.Time             `json:"created_at"`
	UpdatedAt  time.Time             `json:"updated_at"`
	DeletedAt  gorm.DeletedAt        `gorm:"index" json:"-"`
}

// TableName specifies the table name for the IssuedWorkOrder model
func (IssuedWorkOrder) TableName() string {
	return "issued_work_orders"
}

// IssuedWorkOrderItem records one demand item bundled into a work order.
type IssuedWorkOrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WorkOrderID uint   `gorm:"not null;index" json:"work_order_id"`
	DemandID    string `gorm:"index;not null" json:"demand_id"` // composite id of the source demand item
	Kind        string `gorm:"not null" json:"kind"`            // request or cutting
	Description string `json:"description"`
	Quantity    int    `gorm:"not null" json:"quantity"`
}

// TableName specifies the table name for the IssuedWorkOrderItem model
func (IssuedWorkOrderItem) TableName() string {
	return "issued_work_order_items"
}
