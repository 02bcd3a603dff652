package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/stitchline/stitchline-api/models"
	"github.com/stitchline/stitchline-api/utils"
)

// DemandItem is one outstanding work-order demand line. Demand is derived
// on every call, never stored; an item disappears from demand the moment
// its id is contained in any issued work order.
type DemandItem struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"` // request or cutting
	JobID       uint       `json:"job_id"`
	JobBatchNo  string     `json:"job_batch_no"`
	StyleNo     string     `json:"style_no,omitempty"`
	Stage       string     `json:"stage"`
	Description string     `json:"description"`
	Quantity    int        `json:"quantity"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
}

// ComputeDemand derives outstanding demand from the jobs: every approved
// cutting-plan line and every raw work-order request, minus anything
// already bundled into an issued work order. The containment check is the
// sole double-issuance guard; there is no claimed flag.
func ComputeDemand(jobs []models.Job, issued []models.IssuedWorkOrder) []DemandItem {
	claimed := make(map[string]bool)
	for wi := range issued {
		for ii := range issued[wi].Items {
			claimed[issued[wi].Items[ii].DemandID] = true
		}
	}

	demand := make([]DemandItem, 0)
	for ji := range jobs {
		job := &jobs[ji]
		for si := range job.Styles {
			style := &job.Styles[si]
			if style.PlanCutting != models.PlanApproved {
				continue
			}
			id := fmt.Sprintf("%s-%d", models.DemandKindCutting, style.ID)
			if claimed[id] {
				continue
			}
			demand = append(demand, DemandItem{
				ID:          id,
				Kind:        models.DemandKindCutting,
				JobID:       job.ID,
				JobBatchNo:  job.BatchNo,
				StyleNo:     style.StyleNo,
				Stage:       models.ProcessCutting,
				Description: fmt.Sprintf("Cutting - %s (%s)", style.StyleNo, style.Buyer),
				Quantity:    style.Quantity,
				TargetDate:  style.ShipDate,
			})
		}
		for ri := range job.WorkOrderRequests {
			req := &job.WorkOrderRequests[ri]
			id := fmt.Sprintf("%s-%d", models.DemandKindRequest, req.ID)
			if claimed[id] {
				continue
			}
			demand = append(demand, DemandItem{
				ID:          id,
				Kind:        models.DemandKindRequest,
				JobID:       job.ID,
				JobBatchNo:  job.BatchNo,
				Stage:       req.Stage,
				Description: req.Description,
				Quantity:    req.Quantity,
				TargetDate:  req.TargetDate,
			})
		}
	}
	return demand
}

// FilterDemand narrows the demand list by a case-insensitive substring
// over description, stage, style, batch and kind.
func FilterDemand(items []DemandItem, search string) []DemandItem {
	search = strings.TrimSpace(strings.ToLower(search))
	if search == "" {
		return items
	}
	out := make([]DemandItem, 0, len(items))
	for _, item := range items {
		if matchesSearch(search, item.Description, item.Stage, item.StyleNo, item.JobBatchNo, item.Kind) {
			out = append(out, item)
		}
	}
	return out
}

// IssueWorkOrder bundles the selected demand items into one new issued
// work order for the vendor. Issued work orders are append-only; their
// items exclude the bundled demand from every later computation.
func IssueWorkOrder(cols models.Collections, items []DemandItem, vendor, stage string, targetDate *time.Time, now time.Time) (models.Collections, *models.IssuedWorkOrder, error) {
	if vendor == "" {
		return models.Collections{}, nil, validationErr(CodeMissingVendor, "Vendor is required to issue a work order")
	}
	if len(items) == 0 {
		return models.Collections{}, nil, validationErr(CodeEmptySelection, "Select at least one demand item")
	}
	if stage == "" {
		stage = items[0].Stage
	}

	out := cols.Clone()

	order := models.IssuedWorkOrder{
		WONumber:   utils.NewWorkOrderNumber(stage),
		Vendor:     vendor,
		Stage:      stage,
		Status:     models.WorkOrderIssued,
		TargetDate: targetDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, item := range items {
		order.TotalQty += item.Quantity
		order.Items = append(order.Items, models.IssuedWorkOrderItem{
			DemandID:    item.ID,
			Kind:        item.Kind,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	out.WorkOrders = append(out.WorkOrders, order)
	return out, &order, nil
}
