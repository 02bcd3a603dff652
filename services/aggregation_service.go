package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// Row kinds making up the composite row id "<kind>-<sourceId>"
const (
	KindSampling    = "sampling"
	KindMaterial    = "material"
	KindDevelopment = "development"
)

// RowOrigin identifies the mutable record a view row was built from. It
// carries ids only, never the materialized parent objects, so an
// orchestrator can locate and rewrite the source in place.
type RowOrigin struct {
	Kind    string `json:"kind"`
	JobID   uint   `json:"job_id,omitempty"`
	StyleID uint   `json:"style_id,omitempty"`
	ItemID  uint   `json:"item_id"`
}

// Shipment carries the parcel metadata attached to a row by the
// best-effort lookup. All fields are absent when no parcel matched.
type Shipment struct {
	SentDate     *time.Time `json:"sent_date,omitempty"`
	ReceivedDate *time.Time `json:"received_date,omitempty"`
	ParcelNo     string     `json:"parcel_no,omitempty"`
	Courier      string     `json:"courier,omitempty"`
	TrackingNo   string     `json:"tracking_no,omitempty"`
}

// TrackableRow is the unified view of one sampling item, BOM line or
// development sample plus any matching parcel's shipment metadata. Rows
// are view-only and rebuilt fresh on every aggregation call.
type TrackableRow struct {
	ID     string    `json:"id"`
	Origin RowOrigin `json:"origin"`

	Ref          string `json:"ref"`
	ItemName     string `json:"item_name"`
	ProcessGroup string `json:"process_group"`
	JobBatchNo   string `json:"job_batch_no,omitempty"`
	StyleNo      string `json:"style_no,omitempty"`
	Buyer        string `json:"buyer,omitempty"`

	ApprovalRequired bool   `json:"approval_required"`
	LabRequired      bool   `json:"lab_required"`
	IsApproved       bool   `json:"is_approved"`
	Status           string `json:"status"`
	LabStatus        string `json:"lab_status"`
	CurrentStage     string `json:"current_stage,omitempty"`

	FeedbackNote string     `json:"feedback_note,omitempty"`
	FeedbackFrom string     `json:"feedback_from,omitempty"`
	FeedbackDate *time.Time `json:"feedback_date,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Shipment Shipment `json:"shipment"`

	ApprovalLight Status `json:"approval_light"`
	LabLight      Status `json:"lab_light"`
}

// BuildTrackableRows flattens the Job→Style→(Sampling|BOM) trees and the
// development samples into unified rows in stable order: job/style
// iteration order first, development samples last. No row is dropped; a
// missed parcel lookup just leaves the shipment fields absent.
func BuildTrackableRows(jobs []models.Job, devSamples []models.DevelopmentSample, parcels []models.Parcel) []TrackableRow {
	rows := make([]TrackableRow, 0)

	for ji := range jobs {
		job := &jobs[ji]
		for si := range job.Styles {
			style := &job.Styles[si]
			for ii := range style.SamplingItems {
				rows = append(rows, samplingRow(job, style, &style.SamplingItems[ii], parcels))
			}
			for ii := range style.BOMItems {
				rows = append(rows, materialRow(job, style, &style.BOMItems[ii], parcels))
			}
		}
	}
	for di := range devSamples {
		rows = append(rows, developmentRow(&devSamples[di], parcels))
	}

	return rows
}

func samplingRow(job *models.Job, style *models.Style, item *models.SamplingItem, parcels []models.Parcel) TrackableRow {
	row := TrackableRow{
		ID: fmt.Sprintf("%s-%d", KindSampling, item.ID),
		Origin: RowOrigin{
			Kind:    KindSampling,
			JobID:   job.ID,
			StyleID: style.ID,
			ItemID:  item.ID,
		},
		Ref:              item.SamRef,
		ItemName:         item.SampleType,
		ProcessGroup:     models.ProcessSampling,
		JobBatchNo:       job.BatchNo,
		StyleNo:          style.StyleNo,
		Buyer:            style.Buyer,
		ApprovalRequired: item.ApprovalRequired,
		LabRequired:      item.LabRequired,
		IsApproved:       item.IsApproved,
		Status:           item.Status,
		LabStatus:        item.LabStatus,
		CurrentStage:     item.CurrentStage,
		FeedbackNote:     item.FeedbackNote,
		FeedbackFrom:     item.FeedbackFrom,
		FeedbackDate:     item.FeedbackDate,
		UpdatedAt:        item.UpdatedAt,
		Shipment:         lookupShipment(item.SamRef, parcels),
	}
	attachLights(&row)
	return row
}

func materialRow(job *models.Job, style *models.Style, item *models.BOMItem, parcels []models.Parcel) TrackableRow {
	row := TrackableRow{
		ID: fmt.Sprintf("%s-%d", KindMaterial, item.ID),
		Origin: RowOrigin{
			Kind:    KindMaterial,
			JobID:   job.ID,
			StyleID: style.ID,
			ItemID:  item.ID,
		},
		Ref:              item.SupplierRef,
		ItemName:         item.MaterialName,
		ProcessGroup:     item.ProcessGroup,
		JobBatchNo:       job.BatchNo,
		StyleNo:          style.StyleNo,
		Buyer:            style.Buyer,
		ApprovalRequired: item.ApprovalRequired,
		LabRequired:      item.LabRequired,
		IsApproved:       item.IsApproved,
		Status:           item.Status,
		LabStatus:        item.LabStatus,
		FeedbackNote:     item.FeedbackNote,
		FeedbackFrom:     item.FeedbackFrom,
		FeedbackDate:     item.FeedbackDate,
		UpdatedAt:        item.UpdatedAt,
		Shipment:         lookupShipment(item.SupplierRef, parcels),
	}
	attachLights(&row)
	return row
}

func developmentRow(item *models.DevelopmentSample, parcels []models.Parcel) TrackableRow {
	row := TrackableRow{
		ID: fmt.Sprintf("%s-%d", KindDevelopment, item.ID),
		Origin: RowOrigin{
			Kind:   KindDevelopment,
			ItemID: item.ID,
		},
		Ref:              item.SamRef,
		ItemName:         item.SampleType,
		ProcessGroup:     models.ProcessSampling,
		Buyer:            item.Buyer,
		ApprovalRequired: item.ApprovalRequired,
		LabRequired:      item.LabRequired,
		IsApproved:       item.IsApproved,
		Status:           item.Status,
		LabStatus:        item.LabStatus,
		CurrentStage:     item.CurrentStage,
		FeedbackNote:     item.FeedbackNote,
		FeedbackFrom:     item.FeedbackFrom,
		FeedbackDate:     item.FeedbackDate,
		UpdatedAt:        item.UpdatedAt,
		Shipment:         lookupShipment(item.SamRef, parcels),
	}
	attachLights(&row)
	return row
}

// lookupShipment scans parcels for the first one whose contained item
// reference equals ref. The match is textual; a miss is not an error.
// The scan runs fresh on every aggregation pass, no caching.
func lookupShipment(ref string, parcels []models.Parcel) Shipment {
	if ref == "" {
		return Shipment{}
	}
	for pi := range parcels {
		parcel := &parcels[pi]
		for ii := range parcel.Items {
			if parcel.Items[ii].ItemRef != ref {
				continue
			}
			sent := parcel.SentDate
			return Shipment{
				SentDate:     &sent,
				ReceivedDate: parcel.ReceivedDate,
				ParcelNo:     parcel.ParcelNo,
				Courier:      parcel.Courier,
				TrackingNo:   parcel.TrackingNo,
			}
		}
	}
	return Shipment{}
}

func attachLights(row *TrackableRow) {
	row.ApprovalLight = DeriveStatus(StatusKindApproval, StatusInput{
		Required:   row.ApprovalRequired,
		Status:     row.Status,
		SentOn:     row.Shipment.SentDate,
		ReceivedOn: row.Shipment.ReceivedDate,
	})
	row.LabLight = DeriveStatus(StatusKindLab, StatusInput{
		Required:   row.LabRequired,
		Status:     row.LabStatus,
		SentOn:     row.Shipment.SentDate,
		ReceivedOn: row.Shipment.ReceivedDate,
	})
}

// FilterRows narrows rows to those matching the search text on reference,
// item name, style, batch or buyer. Empty search returns the input
// unchanged. Matching is plain case-insensitive substring; anything
// smarter is the caller's concern.
func FilterRows(rows []TrackableRow, search string) []TrackableRow {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return rows
	}
	out := make([]TrackableRow, 0, len(rows))
	for _, row := range rows {
		if matchesSearch(search, row.Ref, row.ItemName, row.StyleNo, row.JobBatchNo, row.Buyer) {
			out = append(out, row)
		}
	}
	return out
}

// matchesSearch reports whether the already-lowercased search term occurs
// in any of the given fields. Every view builder narrows with this.
func matchesSearch(search string, fields ...string) bool {
	return strings.Contains(strings.ToLower(strings.Join(fields, " ")), search)
}
