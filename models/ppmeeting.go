package models

import (
	"time"

	"gorm.io/gorm"
)

// PPMeetingOperations is the fixed set of operations a pre-production
// meeting covers, in the order they are presented.
var PPMeetingOperations = []string{
	"Sampling Pattern",
	"Fabric/Lining",
	"Trims & Accessories",
	"Cutting",
	"Stitching",
	"Embellishment",
	"Washing",
	"Packing/Finishing",
	"Testing",
}

// PPMeeting is the optional notes record a Style owns after its
// pre-production meeting. Only sections with entered data are persisted;
// missing operations are synthesized with empty defaults on read.
type PPMeeting struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	StyleID        uint               `gorm:"uniqueIndex;not null" json:"style_id"`
	InspectionDate time.Time          `json:"inspection_date"`
	Sections       []PPMeetingSection `gorm:"foreignKey:MeetingID" json:"sections"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`
}

// TableName specifies the table name for the PPMeeting model
func (PPMeeting) TableName() string {
	return "pp_meetings"
}

// PPMeetingSection holds the per-operation risk/owner data of a meeting.
type PPMeetingSection struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	MeetingID         uint       `gorm:"not null;index" json:"meeting_id"`
	Operation         string     `gorm:"not null" json:"operation"`
	StartDate         *time.Time `json:"start_date"`
	FinishDate        *time.Time `json:"finish_date"`
	CriticalArea      string     `json:"critical_area"`
	PreventiveMeasure string     `json:"preventive_measure"`
	Owner             string     `json:"owner"`
}

// TableName specifies the table name for the PPMeetingSection model
func (PPMeetingSection) TableName() string {
	return "pp_meeting_sections"
}

// IsEmpty reports whether a section carries no entered data. Empty
// sections are never persisted.
func (s *PPMeetingSection) IsEmpty() bool {
	return s.StartDate == nil && s.FinishDate == nil &&
		s.CriticalArea == "" && s.PreventiveMeasure == "" && s.Owner == ""
}
