package services

import (
	"strings"
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// ApprovalTrackerRow is one line of the approval tracker: an approved
// item whose owning style's plan for that process is itself approved.
type ApprovalTrackerRow struct {
	JobBatchNo string `json:"job_batch_no"`
	StyleNo    string `json:"style_no"`
	Buyer      string `json:"buyer"`
	ItemType   string `json:"item_type"`
	Ref        string `json:"ref"`
	ItemName   string `json:"item_name"`
}

// ApprovalTrackerRows builds the approval tracker. A sampling item shows
// under the Sample type when the style's sampling plan is approved; a BOM
// line shows under its process group when the plan covering that group is
// approved. Items whose plan gate is still pending never appear, however
// far along the item itself is.
func ApprovalTrackerRows(jobs []models.Job) []ApprovalTrackerRow {
	rows := make([]ApprovalTrackerRow, 0)
	for ji := range jobs {
		job := &jobs[ji]
		for si := range job.Styles {
			style := &job.Styles[si]

			if style.PlanSampling == models.PlanApproved {
				for ii := range style.SamplingItems {
					item := &style.SamplingItems[ii]
					if !item.IsApproved {
						continue
					}
					rows = append(rows, ApprovalTrackerRow{
						JobBatchNo: job.BatchNo,
						StyleNo:    style.StyleNo,
						Buyer:      style.Buyer,
						ItemType:   "Sample",
						Ref:        item.SamRef,
						ItemName:   item.SampleType,
					})
				}
			}

			for ii := range style.BOMItems {
				item := &style.BOMItems[ii]
				if !item.IsApproved {
					continue
				}
				if style.PlanFor(item.ProcessGroup) != models.PlanApproved {
					continue
				}
				rows = append(rows, ApprovalTrackerRow{
					JobBatchNo: job.BatchNo,
					StyleNo:    style.StyleNo,
					Buyer:      style.Buyer,
					ItemType:   item.ProcessGroup,
					Ref:        item.SupplierRef,
					ItemName:   item.MaterialName,
				})
			}
		}
	}
	return rows
}

// FilterApprovalRows narrows the approval tracker by a case-insensitive
// substring over reference, item, style, batch and buyer fields.
func FilterApprovalRows(rows []ApprovalTrackerRow, search string) []ApprovalTrackerRow {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return rows
	}
	out := make([]ApprovalTrackerRow, 0, len(rows))
	for _, row := range rows {
		if matchesSearch(search, row.Ref, row.ItemName, row.ItemType, row.StyleNo, row.JobBatchNo, row.Buyer) {
			out = append(out, row)
		}
	}
	return out
}

// CommentsTrackerRow is one line of the comments/feedback tracker.
type CommentsTrackerRow struct {
	RowID        string     `json:"row_id"`
	Ref          string     `json:"ref"`
	ItemName     string     `json:"item_name"`
	JobBatchNo   string     `json:"job_batch_no,omitempty"`
	StyleNo      string     `json:"style_no,omitempty"`
	Buyer        string     `json:"buyer,omitempty"`
	FeedbackNote string     `json:"feedback_note"`
	FeedbackFrom string     `json:"feedback_from"`
	FeedbackDate *time.Time `json:"feedback_date,omitempty"`
	Status       string     `json:"status"`
	Light        Status     `json:"light"`
}

// CommentsTrackerRows narrows the unified rows to those carrying recorded
// feedback, preserving aggregation order.
func CommentsTrackerRows(rows []TrackableRow) []CommentsTrackerRow {
	out := make([]CommentsTrackerRow, 0)
	for _, row := range rows {
		if row.FeedbackNote == "" && row.FeedbackDate == nil {
			continue
		}
		out = append(out, CommentsTrackerRow{
			RowID:        row.ID,
			Ref:          row.Ref,
			ItemName:     row.ItemName,
			JobBatchNo:   row.JobBatchNo,
			StyleNo:      row.StyleNo,
			Buyer:        row.Buyer,
			FeedbackNote: row.FeedbackNote,
			FeedbackFrom: row.FeedbackFrom,
			FeedbackDate: row.FeedbackDate,
			Status:       row.Status,
			Light:        row.ApprovalLight,
		})
	}
	return out
}

// FilterCommentsRows narrows the comments tracker the same way FilterRows
// narrows the unified board.
func FilterCommentsRows(rows []CommentsTrackerRow, search string) []CommentsTrackerRow {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return rows
	}
	out := make([]CommentsTrackerRow, 0, len(rows))
	for _, row := range rows {
		if matchesSearch(search, row.Ref, row.ItemName, row.StyleNo, row.JobBatchNo, row.Buyer, row.FeedbackFrom) {
			out = append(out, row)
		}
	}
	return out
}
