package services

import (
	"time"

	"github.com/stitchline/stitchline-api/models"
)

// testNow is the fixed clock every engine test passes as now.
var testNow = time.Date(2026, 3, 17, 9, 30, 0, 0, time.UTC)

// testCollections builds the shared fixture: one job with two styles,
// sampling and BOM lines in assorted states, one development sample and
// no parcels or work orders yet.
func testCollections() models.Collections {
	shipDate := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	return models.Collections{
		Jobs: []models.Job{
			{
				ID:           1,
				BatchNo:      "JB-2026-014",
				Merchandiser: "S. Aziz",
				Season:       "SS26",
				Status:       "Open",
				Styles: []models.Style{
					{
						ID:            10,
						JobID:         1,
						StyleNo:       "ST-ALPHA",
						Buyer:         "Nordwind",
						Quantity:      1200,
						ShipDate:      &shipDate,
						PlanSampling:  models.PlanApproved,
						PlanFabric:    models.PlanApproved,
						PlanCutting:   models.PlanApproved,
						MeetingStatus: models.MeetingNotHeld,
						SamplingItems: []models.SamplingItem{
							{
								ID:               100,
								StyleID:          10,
								SamRef:           "SAM-1001",
								SampleType:       "Proto",
								ApprovalRequired: true,
								Status:           models.StatusPending,
								LabStatus:        models.LabNotSent,
								CurrentStage:     models.StageNotStarted,
							},
							{
								ID:               101,
								StyleID:          10,
								SamRef:           "SAM-1002",
								SampleType:       "Fit",
								ApprovalRequired: true,
								IsApproved:       true,
								Status:           models.StatusApproved,
								LabStatus:        models.LabNotSent,
								CurrentStage:     models.StageFinishing,
							},
						},
						BOMItems: []models.BOMItem{
							{
								ID:               200,
								StyleID:          10,
								SupplierRef:      "FAB-CHAMBRAY-9",
								MaterialName:     "Chambray 4.5oz",
								Supplier:         "Minh Textiles",
								ProcessGroup:     models.ProcessFabric,
								ApprovalRequired: true,
								LabRequired:      true,
								Status:           models.StatusPending,
								LabStatus:        models.LabTesting,
							},
						},
					},
					{
						ID:            11,
						JobID:         1,
						StyleNo:       "ST-BETA",
						Buyer:         "Nordwind",
						Quantity:      800,
						PlanSampling:  models.PlanApproved,
						MeetingStatus: models.MeetingNotHeld,
						BOMItems: []models.BOMItem{
							{
								ID:               201,
								StyleID:          11,
								SupplierRef:      "TRM-BTN-77",
								MaterialName:     "Corozo button 18L",
								ProcessGroup:     models.ProcessTrims,
								ApprovalRequired: true,
								IsApproved:       true,
								Status:           models.StatusApproved,
								LabStatus:        models.LabNotSent,
							},
						},
					},
				},
				WorkOrderRequests: []models.WorkOrderRequest{
					{
						ID:          300,
						JobID:       1,
						Stage:       models.ProcessStitching,
						Description: "Stitching - contrast panels",
						Quantity:    400,
					},
				},
			},
		},
		DevSamples: []models.DevelopmentSample{
			{
				ID:               500,
				SamRef:           "DEV-7",
				SampleType:       "Development",
				Buyer:            "Atelier Brume",
				ApprovalRequired: true,
				Status:           models.StatusPending,
				LabStatus:        models.LabNotSent,
				CurrentStage:     models.StageStitching,
			},
		},
	}
}

// rowByID picks one row out of an aggregation result by composite id.
func rowByID(rows []TrackableRow, id string) (TrackableRow, bool) {
	for _, row := range rows {
		if row.ID == id {
			return row, true
		}
	}
	return TrackableRow{}, false
}
