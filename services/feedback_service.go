package services

import (
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// Feedback is one buyer response captured against a tracked row.
type Feedback struct {
	Note       string    `json:"note"`
	From       string    `json:"from"`
	ReceivedOn time.Time `json:"received_on"`
	Outcome    string    `json:"outcome"` // Approved, Rejected or Commented
}

// RecordFeedback patches the originating sampling item, BOM line or
// development sample with the feedback fields and outcome. The only
// validation is a resolvable target row.
func RecordFeedback(cols models.Collections, origin RowOrigin, fb Feedback, now time.Time) (models.Collections, error) {
	out := cols.Clone()

	switch origin.Kind {
	case KindSampling:
		item := findSamplingItem(&out, origin)
		if item == nil {
			return models.Collections{}, validationErr(CodeRowNotFound, "Sampling item not found for feedback")
		}
		received := fb.ReceivedOn
		item.FeedbackNote = fb.Note
		item.FeedbackFrom = fb.From
		item.FeedbackDate = &received
		applyOutcome(fb.Outcome, &item.Status, &item.IsApproved)
		item.UpdatedAt = now
	case KindMaterial:
		item := findBOMItem(&out, origin)
		if item == nil {
			return models.Collections{}, validationErr(CodeRowNotFound, "BOM item not found for feedback")
		}
		received := fb.ReceivedOn
		item.FeedbackNote = fb.Note
		item.FeedbackFrom = fb.From
		item.FeedbackDate = &received
		applyOutcome(fb.Outcome, &item.Status, &item.IsApproved)
		item.UpdatedAt = now
	case KindDevelopment:
		item := findDevSample(&out, origin)
		if item == nil {
			return models.Collections{}, validationErr(CodeRowNotFound, "Development sample not found for feedback")
		}
		received := fb.ReceivedOn
		item.FeedbackNote = fb.Note
		item.FeedbackFrom = fb.From
		item.FeedbackDate = &received
		applyOutcome(fb.Outcome, &item.Status, &item.IsApproved)
		item.UpdatedAt = now
	default:
		return models.Collections{}, validationErr(CodeRowNotFound, "Feedback requires a target row")
	}

	return out, nil
}

// applyOutcome folds a feedback outcome into the item's lifecycle status.
// Commented leaves the status where it was.
func applyOutcome(outcome string, status *string, isApproved *bool) {
	switch outcome {
	case models.OutcomeApproved:
		*status = models.StatusApproved
		*isApproved = true
	case models.OutcomeRejected:
		*status = models.StatusRejected
		*isApproved = false
	}
}

// ReminderBatch groups rows for one follow-up reminder to a buyer. The
// engine only assembles the batch; sending it is external.
type ReminderBatch struct {
	Buyer string         `json:"buyer"`
	Rows  []TrackableRow `json:"rows"`
}

// BuildReminderBatch validates that every selected row belongs to the
// same buyer and returns the assembled batch. A cross-buyer mix is a
// validation error.
func BuildReminderBatch(rows []TrackableRow) (*ReminderBatch, error) {
	if len(rows) == 0 {
		return nil, validationErr(CodeEmptySelection, "Select at least one row for a reminder")
	}
	buyer := rows[0].Buyer
	for _, row := range rows[1:] {
		if row.Buyer != buyer {
			return nil, validationErr(CodeMixedBuyers, "A reminder batch cannot mix buyers")
		}
	}
	return &ReminderBatch{Buyer: buyer, Rows: rows}, nil
}
