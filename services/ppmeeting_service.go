package services

import (
	"strings"
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// MeetingSections returns the style's PP-meeting sections with an entry
// for every operation in the fixed set. Operations without stored data
// are synthesized with empty defaults; they are never persisted until
// edited.
func MeetingSections(style *models.Style) []models.PPMeetingSection {
	stored := make(map[string]models.PPMeetingSection)
	if style.PPMeeting != nil {
		for _, section := range style.PPMeeting.Sections {
			stored[section.Operation] = section
		}
	}

	sections := make([]models.PPMeetingSection, 0, len(models.PPMeetingOperations))
	for _, op := range models.PPMeetingOperations {
		if section, ok := stored[op]; ok {
			sections = append(sections, section)
			continue
		}
		sections = append(sections, models.PPMeetingSection{Operation: op})
	}
	return sections
}

// SaveMeetingNotes stores the pre-production meeting record on a style:
// only sections with entered data are kept, the style's meeting status
// becomes Completed and its meeting date is the inspection date.
func SaveMeetingNotes(cols models.Collections, jobID, styleID uint, inspectionDate time.Time, sections []models.PPMeetingSection, now time.Time) (models.Collections, error) {
	out := cols.Clone()

	style := findStyle(&out, jobID, styleID)
	if style == nil {
		return models.Collections{}, validationErr(CodeStyleNotFound, "Style not found for meeting notes")
	}

	kept := make([]models.PPMeetingSection, 0, len(sections))
	for _, section := range sections {
		if section.IsEmpty() {
			continue
		}
		kept = append(kept, section)
	}

	if style.PPMeeting == nil {
		style.PPMeeting = &models.PPMeeting{StyleID: style.ID}
	}
	style.PPMeeting.InspectionDate = inspectionDate
	style.PPMeeting.Sections = kept
	style.PPMeeting.UpdatedAt = now

	meetingDate := inspectionDate
	style.MeetingStatus = models.MeetingCompleted
	style.MeetingDate = &meetingDate
	style.UpdatedAt = now

	return out, nil
}

// PPMeetingRow is one line of the PP-meeting list view.
type PPMeetingRow struct {
	JobID         uint       `json:"job_id"`
	JobBatchNo    string     `json:"job_batch_no"`
	StyleID       uint       `json:"style_id"`
	StyleNo       string     `json:"style_no"`
	Buyer         string     `json:"buyer"`
	MeetingStatus string     `json:"meeting_status"`
	MeetingDate   *time.Time `json:"meeting_date,omitempty"`
}

// PPMeetingRows lists every style with its meeting state, in job/style
// iteration order.
func PPMeetingRows(jobs []models.Job) []PPMeetingRow {
	rows := make([]PPMeetingRow, 0)
	for ji := range jobs {
		job := &jobs[ji]
		for si := range job.Styles {
			style := &job.Styles[si]
			rows = append(rows, PPMeetingRow{
				JobID:         job.ID,
				JobBatchNo:    job.BatchNo,
				StyleID:       style.ID,
				StyleNo:       style.StyleNo,
				Buyer:         style.Buyer,
				MeetingStatus: style.MeetingStatus,
				MeetingDate:   style.MeetingDate,
			})
		}
	}
	return rows
}

// FilterPPMeetingRows narrows the meeting list by a case-insensitive
// substring over style, batch, buyer and meeting status.
func FilterPPMeetingRows(rows []PPMeetingRow, search string) []PPMeetingRow {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return rows
	}
	out := make([]PPMeetingRow, 0, len(rows))
	for _, row := range rows {
		if matchesSearch(search, row.StyleNo, row.JobBatchNo, row.Buyer, row.MeetingStatus) {
			out = append(out, row)
		}
	}
	return out
}
