package services

import (
	"time"

	"github.com/stitchline/stitchline-api/models"
	"github.com/stitchline/stitchline-api/utils"
)

// OtherItem is an ad-hoc free-form parcel line (documents, swatch books,
// catalogues...) with a declared customs value.
type OtherItem struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	UnitValue float64 `json:"unit_value"`
}

// DispatchCommand describes one parcel dispatch. Zero selected rows is
// valid and enables free-form shipments.
type DispatchCommand struct {
	Buyer            string         `json:"buyer"`
	ConsigneeName    string         `json:"consignee_name"`
	ConsigneeAddr    string         `json:"consignee_addr"`
	Courier          string         `json:"courier"`
	TrackingNo       string         `json:"tracking_no"`
	SkipShipmentInfo bool           `json:"skip_shipment_info"`
	SelectedRows     []TrackableRow `json:"selected_rows"`
	OtherItems       []OtherItem    `json:"other_items"`
}

// DispatchParcel creates one parcel from the command and advances every
// selected traceable row's source record to Submitted. All effects are
// computed on a clone of the input collections, so a validation failure
// produces zero changes and the caller commits the replacement in one
// step. Returns the replacement collections and the created parcel.
func DispatchParcel(cols models.Collections, cmd DispatchCommand, now time.Time) (models.Collections, *models.Parcel, error) {
	if cmd.ConsigneeName == "" {
		return models.Collections{}, nil, validationErr(CodeMissingConsignee, "Consignee name is required")
	}
	if cmd.ConsigneeAddr == "" {
		return models.Collections{}, nil, validationErr(CodeMissingAddress, "Consignee address is required")
	}

	out := cols.Clone()

	parcel := models.Parcel{
		ParcelNo:      utils.NewParcelNumber(now),
		Buyer:         cmd.Buyer,
		ConsigneeName: cmd.ConsigneeName,
		ConsigneeAddr: cmd.ConsigneeAddr,
		Courier:       cmd.Courier,
		TrackingNo:    cmd.TrackingNo,
		SentDate:      now,
		Status:        models.ParcelSent,
	}
	if cmd.SkipShipmentInfo {
		parcel.Courier = models.PlaceholderValue
		parcel.TrackingNo = models.PlaceholderValue
		parcel.PendingTracking = true
	}

	position := 0
	for _, row := range cmd.SelectedRows {
		position++
		line := models.ParcelItem{
			Position: position,
			ItemRef:  row.Ref,
			Category: row.ProcessGroup,
			Quantity: 1,
		}
		if row.Origin.Kind != "" {
			line.OriginKind = row.Origin.Kind
			line.OriginJobID = row.Origin.JobID
			line.OriginStyleID = row.Origin.StyleID
			line.OriginItemID = row.Origin.ItemID
		}
		parcel.Items = append(parcel.Items, line)
	}
	for _, item := range cmd.OtherItems {
		position++
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		parcel.Items = append(parcel.Items, models.ParcelItem{
			Position:  position,
			ItemRef:   item.Name,
			Category:  item.Category,
			Quantity:  qty,
			UnitValue: item.UnitValue,
		})
	}

	// Selected rows that trace back to a real record transition to
	// Submitted in place; untraceable rows stay line items only.
	for _, row := range cmd.SelectedRows {
		markSubmitted(&out, row.Origin, now)
	}

	out.Parcels = append(out.Parcels, parcel)
	return out, &parcel, nil
}

func markSubmitted(cols *models.Collections, origin RowOrigin, now time.Time) {
	switch origin.Kind {
	case KindSampling:
		if item := findSamplingItem(cols, origin); item != nil {
			item.Status = models.StatusSubmitted
			item.CurrentStage = models.StageDispatched
			item.UpdatedAt = now
		}
	case KindMaterial:
		if item := findBOMItem(cols, origin); item != nil {
			item.Status = models.StatusSubmitted
			item.UpdatedAt = now
		}
	case KindDevelopment:
		if item := findDevSample(cols, origin); item != nil {
			item.Status = models.StatusSubmitted
			item.CurrentStage = models.StageDispatched
			item.UpdatedAt = now
		}
	}
}

// MarkParcelReceived confirms receipt of a parcel.
func MarkParcelReceived(cols models.Collections, parcelID uint, when time.Time) (models.Collections, error) {
	out := cols.Clone()
	parcel := findParcel(&out, parcelID)
	if parcel == nil {
		return models.Collections{}, validationErr(CodeParcelNotFound, "Parcel not found")
	}
	parcel.ReceivedDate = &when
	parcel.Status = models.ParcelReceived
	parcel.UpdatedAt = when
	return out, nil
}

// UpdateParcelTracking fills in courier and tracking number on a parcel
// dispatched with shipment info skipped.
func UpdateParcelTracking(cols models.Collections, parcelID uint, courier, trackingNo string, now time.Time) (models.Collections, error) {
	out := cols.Clone()
	parcel := findParcel(&out, parcelID)
	if parcel == nil {
		return models.Collections{}, validationErr(CodeParcelNotFound, "Parcel not found")
	}
	parcel.Courier = courier
	parcel.TrackingNo = trackingNo
	parcel.PendingTracking = false
	parcel.UpdatedAt = now
	return out, nil
}
