package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitchline/stitchline-api/models"
)

func TestDispatchParcelValidationLeavesCollectionsUntouched(t *testing.T) {
	tests := []struct {
		name         string
		cmd          DispatchCommand
		expectedCode string
	}{
		{
			name:         "missing consignee name",
			cmd:          DispatchCommand{ConsigneeAddr: "12 Mill Lane"},
			expectedCode: CodeMissingConsignee,
		},
		{
			name:         "missing consignee address",
			cmd:          DispatchCommand{ConsigneeName: "R. Okafor"},
			expectedCode: CodeMissingAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := testCollections()

			out, parcel, err := DispatchParcel(cols, tt.cmd, testNow)

			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedCode, verr.Code)
			assert.Nil(t, parcel)
			assert.Empty(t, out.Parcels)
			// Input collections stay exactly as loaded
			assert.Equal(t, testCollections(), cols)
		})
	}
}

func TestDispatchParcelBundlesRowsAndOtherItems(t *testing.T) {
	cols := testCollections()
	rows := BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)
	proto, ok := rowByID(rows, "sampling-100")
	require.True(t, ok)
	fabric, ok := rowByID(rows, "material-200")
	require.True(t, ok)

	cmd := DispatchCommand{
		Buyer:         "Nordwind",
		ConsigneeName: "R. Okafor",
		ConsigneeAddr: "12 Mill Lane, Leeds",
		Courier:       "DHL",
		TrackingNo:    "7788990011",
		SelectedRows:  []TrackableRow{proto, fabric},
		OtherItems: []OtherItem{
			{Name: "Lookbook SS26", Category: "Documents", Quantity: 2, UnitValue: 4.5},
			{Name: "Swatch card", Category: "Documents", UnitValue: 1.0}, // zero quantity defaults to 1
		},
	}

	out, parcel, err := DispatchParcel(cols, cmd, testNow)

	require.NoError(t, err)
	require.NotNil(t, parcel)
	assert.True(t, strings.HasPrefix(parcel.ParcelNo, "PCL-20260317-"))
	assert.Equal(t, models.ParcelSent, parcel.Status)
	assert.Equal(t, testNow, parcel.SentDate)
	assert.False(t, parcel.PendingTracking)

	// One parcel, rows first then other items, positions contiguous
	require.Len(t, out.Parcels, 1)
	items := out.Parcels[0].Items
	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, i+1, item.Position)
	}
	assert.Equal(t, "SAM-1001", items[0].ItemRef)
	assert.Equal(t, KindSampling, items[0].OriginKind)
	assert.Equal(t, uint(100), items[0].OriginItemID)
	assert.Equal(t, "FAB-CHAMBRAY-9", items[1].ItemRef)
	assert.Equal(t, KindMaterial, items[1].OriginKind)
	assert.Equal(t, "Lookbook SS26", items[2].ItemRef)
	assert.False(t, items[2].IsTraceable())
	assert.Equal(t, 2, items[2].Quantity)
	assert.Equal(t, 1, items[3].Quantity, "zero quantity free-form lines default to one unit")

	// Selected rows transitioned to Submitted on the replacement only
	alpha := out.Jobs[0].Styles[0]
	assert.Equal(t, models.StatusSubmitted, alpha.SamplingItems[0].Status)
	assert.Equal(t, models.StageDispatched, alpha.SamplingItems[0].CurrentStage)
	assert.Equal(t, models.StatusSubmitted, alpha.BOMItems[0].Status)
	assert.Equal(t, models.StatusPending, cols.Jobs[0].Styles[0].SamplingItems[0].Status, "input collections are never mutated")

	// Unselected rows stay where they were
	assert.Equal(t, models.StatusApproved, alpha.SamplingItems[1].Status)
}

func TestDispatchParcelSkipShipmentInfo(t *testing.T) {
	cols := testCollections()

	cmd := DispatchCommand{
		Buyer:            "Nordwind",
		ConsigneeName:    "R. Okafor",
		ConsigneeAddr:    "12 Mill Lane, Leeds",
		Courier:          "DHL", // ignored when skipped
		TrackingNo:       "7788990011",
		SkipShipmentInfo: true,
	}

	out, parcel, err := DispatchParcel(cols, cmd, testNow)

	require.NoError(t, err)
	assert.Equal(t, models.PlaceholderValue, parcel.Courier)
	assert.Equal(t, models.PlaceholderValue, parcel.TrackingNo)
	assert.True(t, parcel.PendingTracking)
	require.Len(t, out.Parcels, 1)
	assert.True(t, out.Parcels[0].PendingTracking)
}

func TestDispatchParcelFreeFormOnly(t *testing.T) {
	cols := testCollections()

	cmd := DispatchCommand{
		Buyer:         "Atelier Brume",
		ConsigneeName: "M. Laurent",
		ConsigneeAddr: "4 Rue des Rosiers, Paris",
		Courier:       "FedEx",
		TrackingNo:    "555611",
		OtherItems:    []OtherItem{{Name: "Catalogue 2026", Category: "Documents", Quantity: 1, UnitValue: 12}},
	}

	out, parcel, err := DispatchParcel(cols, cmd, testNow)

	require.NoError(t, err)
	require.Len(t, parcel.Items, 1)
	assert.False(t, parcel.Items[0].IsTraceable())
	// No source record was touched
	assert.Equal(t, testCollections().Jobs, out.Jobs)
	assert.Equal(t, testCollections().DevSamples, out.DevSamples)
}

// Full approval lifecycle for a single sample: pending, sent, waiting
// feedback on receipt, approved once feedback lands.
func TestSampleLifecycleLights(t *testing.T) {
	cols := testCollections()
	origin := RowOrigin{Kind: KindSampling, JobID: 1, StyleID: 10, ItemID: 100}

	light := func(c models.Collections) Status {
		rows := BuildTrackableRows(c.Jobs, c.DevSamples, c.Parcels)
		row, ok := rowByID(rows, "sampling-100")
		require.True(t, ok)
		return row.ApprovalLight
	}

	assert.Equal(t, Status{Color: ColorRed, Label: LabelPending}, light(cols))

	rows := BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)
	proto, _ := rowByID(rows, "sampling-100")
	cols, _, err := DispatchParcel(cols, DispatchCommand{
		Buyer:         "Nordwind",
		ConsigneeName: "R. Okafor",
		ConsigneeAddr: "12 Mill Lane, Leeds",
		Courier:       "DHL",
		TrackingNo:    "7788990011",
		SelectedRows:  []TrackableRow{proto},
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, Status{Color: ColorYellow, Label: LabelSent}, light(cols))

	cols, err = MarkParcelReceived(cols, cols.Parcels[0].ID, testNow.Add(72*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, Status{Color: ColorOrange, Label: LabelWaitingFeedback}, light(cols))

	cols, err = RecordFeedback(cols, origin, Feedback{
		Note:       "Fit confirmed, proceed to PP",
		From:       "R. Okafor",
		ReceivedOn: testNow.Add(120 * time.Hour),
		Outcome:    models.OutcomeApproved,
	}, testNow.Add(120*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, Status{Color: ColorGreen, Label: LabelApproved}, light(cols))
}

func TestMarkParcelReceived(t *testing.T) {
	cols := testCollections()
	cols.Parcels = []models.Parcel{{ID: 7, ParcelNo: "PCL-X", Status: models.ParcelSent, SentDate: testNow}}
	when := testNow.Add(96 * time.Hour)

	out, err := MarkParcelReceived(cols, 7, when)

	require.NoError(t, err)
	assert.Equal(t, models.ParcelReceived, out.Parcels[0].Status)
	require.NotNil(t, out.Parcels[0].ReceivedDate)
	assert.Equal(t, when, *out.Parcels[0].ReceivedDate)
	assert.Nil(t, cols.Parcels[0].ReceivedDate)

	_, err = MarkParcelReceived(cols, 99, when)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeParcelNotFound, verr.Code)
}

func TestUpdateParcelTracking(t *testing.T) {
	cols := testCollections()
	cols.Parcels = []models.Parcel{{
		ID:              7,
		ParcelNo:        "PCL-X",
		Courier:         models.PlaceholderValue,
		TrackingNo:      models.PlaceholderValue,
		PendingTracking: true,
		Status:          models.ParcelSent,
		SentDate:        testNow,
	}}

	out, err := UpdateParcelTracking(cols, 7, "DHL", "445522", testNow.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "DHL", out.Parcels[0].Courier)
	assert.Equal(t, "445522", out.Parcels[0].TrackingNo)
	assert.False(t, out.Parcels[0].PendingTracking)
	assert.True(t, cols.Parcels[0].PendingTracking, "input collections are never mutated")

	_, err = UpdateParcelTracking(cols, 99, "DHL", "445522", testNow)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, CodeParcelNotFound, verr.Code)
}
