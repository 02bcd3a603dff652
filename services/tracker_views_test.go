package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/stitchline-api/models"
)

func TestApprovalTrackerRows(t *testing.T) {
	cols := testCollections()

	rows := ApprovalTrackerRows(cols.Jobs)

	// SAM-1002 is approved under an approved sampling plan. The approved
	// trims button on ST-BETA stays hidden while its plan gate is pending,
	// and the unapproved fabric never shows.
	require.Len(t, rows, 1)
	assert.Equal(t, ApprovalTrackerRow{
		JobBatchNo: "JB-2026-014",
		StyleNo:    "ST-ALPHA",
		Buyer:      "Nordwind",
		ItemType:   "Sample",
		Ref:        "SAM-1002",
		ItemName:   "Fit",
	}, rows[0])
}

func TestApprovalTrackerPlanGate(t *testing.T) {
	cols := testCollections()

	// Approving the fabric item alone is not enough while covering plans
	// are pending elsewhere; flipping the plan makes the row appear.
	cols.Jobs[0].Styles[1].BOMItems[0].IsApproved = true
	before := ApprovalTrackerRows(cols.Jobs)
	require.Len(t, before, 1)

	cols.Jobs[0].Styles[1].PlanTrims = models.PlanApproved
	after := ApprovalTrackerRows(cols.Jobs)
	require.Len(t, after, 2)
	assert.Equal(t, models.ProcessTrims, after[1].ItemType)
	assert.Equal(t, "TRM-BTN-77", after[1].Ref)
}

func TestApprovalTrackerLiningSharesFabricPlan(t *testing.T) {
	cols := testCollections()
	cols.Jobs[0].Styles[0].BOMItems = append(cols.Jobs[0].Styles[0].BOMItems, models.BOMItem{
		ID:           210,
		StyleID:      10,
		SupplierRef:  "LIN-CUPRO-3",
		MaterialName: "Cupro lining",
		ProcessGroup: models.ProcessLining,
		IsApproved:   true,
	})

	rows := ApprovalTrackerRows(cols.Jobs)

	var lining *ApprovalTrackerRow
	for i := range rows {
		if rows[i].Ref == "LIN-CUPRO-3" {
			lining = &rows[i]
		}
	}
	require.NotNil(t, lining, "lining rows pass through the fabric plan gate")
	assert.Equal(t, models.ProcessLining, lining.ItemType)
}

func TestCommentsTrackerRows(t *testing.T) {
	cols := testCollections()
	feedbackDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackNote = "Collar needs a softer fuse"
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackFrom = "R. Okafor"
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackDate = &feedbackDate

	rows := BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)
	comments := CommentsTrackerRows(rows)

	require.Len(t, comments, 1)
	assert.Equal(t, "sampling-100", comments[0].RowID)
	assert.Equal(t, "SAM-1001", comments[0].Ref)
	assert.Equal(t, "Collar needs a softer fuse", comments[0].FeedbackNote)
	assert.Equal(t, "R. Okafor", comments[0].FeedbackFrom)
	require.NotNil(t, comments[0].FeedbackDate)
	assert.Equal(t, Status{Color: ColorRed, Label: LabelPending}, comments[0].Light)
}

func TestCommentsTrackerRowsEmptyWithoutFeedback(t *testing.T) {
	cols := testCollections()
	rows := BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)

	assert.Empty(t, CommentsTrackerRows(rows))
}

func TestFilterApprovalRows(t *testing.T) {
	cols := testCollections()
	cols.Jobs[0].Styles[1].BOMItems[0].IsApproved = true
	cols.Jobs[0].Styles[1].PlanTrims = models.PlanApproved
	rows := ApprovalTrackerRows(cols.Jobs)
	require.Len(t, rows, 2)

	tests := []struct {
		name     string
		search   string
		expected []string
	}{
		{name: "empty search returns everything", search: "", expected: []string{"SAM-1002", "TRM-BTN-77"}},
		{name: "reference match is case-insensitive", search: "trm-btn", expected: []string{"TRM-BTN-77"}},
		{name: "item name match", search: "fit", expected: []string{"SAM-1002"}},
		{name: "style number narrows", search: "st-alpha", expected: []string{"SAM-1002"}},
		{name: "buyer spans styles", search: "nordwind", expected: []string{"SAM-1002", "TRM-BTN-77"}},
		{name: "no match", search: "velvet", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterApprovalRows(rows, tt.search)
			refs := make([]string, 0, len(got))
			for _, row := range got {
				refs = append(refs, row.Ref)
			}
			assert.Equal(t, tt.expected, refs)
		})
	}
}

func TestFilterCommentsRows(t *testing.T) {
	cols := testCollections()
	feedbackDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackNote = "Collar needs a softer fuse"
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackFrom = "R. Okafor"
	cols.Jobs[0].Styles[0].SamplingItems[0].FeedbackDate = &feedbackDate

	comments := CommentsTrackerRows(BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels))
	require.Len(t, comments, 1)

	assert.Len(t, FilterCommentsRows(comments, ""), 1)
	assert.Len(t, FilterCommentsRows(comments, "okafor"), 1)
	assert.Len(t, FilterCommentsRows(comments, "SAM-1001"), 1)
	assert.Empty(t, FilterCommentsRows(comments, "velvet"))
}
