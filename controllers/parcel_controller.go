package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/services"
)

// DispatchParcelRequest represents the request body for a parcel dispatch
type DispatchParcelRequest struct {
	Buyer            string               `json:"buyer"`
	ConsigneeName    string               `json:"consignee_name"`
	ConsigneeAddr    string               `json:"consignee_addr"`
	Courier          string               `json:"courier"`
	TrackingNo       string               `json:"tracking_no"`
	SkipShipmentInfo bool                 `json:"skip_shipment_info"`
	RowIDs           []string             `json:"row_ids"`
	OtherItems       []services.OtherItem `json:"other_items"`
}

// DispatchParcel handles POST /api/v1/parcels/dispatch - creates one
// parcel and advances every selected traceable row to Submitted in the
// same request. Zero selected rows is a valid free-form shipment.
func DispatchParcel(c *gin.Context) {
	var req DispatchParcelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load tracking data")
		return
	}

	rows := services.BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)
	selected := selectRowsByID(rows, req.RowIDs)
	if len(selected) != len(req.RowIDs) {
		respondError(c, http.StatusBadRequest, "ROW_NOT_FOUND", "One or more selected rows no longer exist")
		return
	}

	updated, parcel, err := services.DispatchParcel(cols, services.DispatchCommand{
		Buyer:            req.Buyer,
		ConsigneeName:    req.ConsigneeName,
		ConsigneeAddr:    req.ConsigneeAddr,
		Courier:          req.Courier,
		TrackingNo:       req.TrackingNo,
		SkipShipmentInfo: req.SkipShipmentInfo,
		SelectedRows:     selected,
		OtherItems:       req.OtherItems,
	}, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save dispatch")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    parcel,
	})
}

// ListParcels handles GET /api/v1/parcels
func ListParcels(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load parcels")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cols.Parcels,
	})
}

// MarkParcelReceivedRequest represents the request body for confirming receipt
type MarkParcelReceivedRequest struct {
	ReceivedOn *time.Time `json:"received_on"`
}

// MarkParcelReceived handles PATCH /api/v1/parcels/:id/received
func MarkParcelReceived(c *gin.Context) {
	parcelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Parcel ID must be numeric")
		return
	}

	// Body is optional; an empty body means "received just now"
	var req MarkParcelReceivedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
			return
		}
	}
	when := time.Now()
	if req.ReceivedOn != nil {
		when = *req.ReceivedOn
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load parcels")
		return
	}

	updated, err := services.MarkParcelReceived(cols, uint(parcelID), when)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save parcel")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Parcel marked as received",
	})
}

// UpdateParcelTrackingRequest represents the request body for adding tracking
type UpdateParcelTrackingRequest struct {
	Courier    string `json:"courier" binding:"required"`
	TrackingNo string `json:"tracking_no" binding:"required"`
}

// UpdateParcelTracking handles PATCH /api/v1/parcels/:id/tracking
func UpdateParcelTracking(c *gin.Context) {
	parcelID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Parcel ID must be numeric")
		return
	}

	var req UpdateParcelTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load parcels")
		return
	}

	updated, err := services.UpdateParcelTracking(cols, uint(parcelID), req.Courier, req.TrackingNo, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save parcel")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Tracking information updated",
	})
}
