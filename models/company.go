package models

import (
	"time"
)

// CompanyDetails holds the exporting company's letterhead data. It is
// consumed only by external report generation, never by the engine.
type CompanyDetails struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	LogoS3Key *string   `json:"logo_s3_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the CompanyDetails model
func (CompanyDetails) TableName() string {
	return "company_details"
}
