package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/services"
)

// GetWorkOrderDemand handles GET /api/v1/workorders/demand - the derived
// list of outstanding demand, recomputed on every call and optionally
// narrowed by ?search=
func GetWorkOrderDemand(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load work-order data")
		return
	}

	demand := services.ComputeDemand(cols.Jobs, cols.WorkOrders)
	demand = services.FilterDemand(demand, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    demand,
	})
}

// ListWorkOrders handles GET /api/v1/workorders
func ListWorkOrders(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load work orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cols.WorkOrders,
	})
}

// IssueWorkOrderRequest represents the request body for issuing a work order
type IssueWorkOrderRequest struct {
	DemandIDs  []string   `json:"demand_ids" binding:"required"`
	Vendor     string     `json:"vendor"`
	Stage      string     `json:"stage"`
	TargetDate *time.Time `json:"target_date"`
}

// IssueWorkOrder handles POST /api/v1/workorders/issue - bundles the
// selected demand items into one issued work order. Issued items drop out
// of every later demand computation.
func IssueWorkOrder(c *gin.Context) {
	var req IssueWorkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load work-order data")
		return
	}

	demand := services.ComputeDemand(cols.Jobs, cols.WorkOrders)
	byID := make(map[string]services.DemandItem, len(demand))
	for _, item := range demand {
		byID[item.ID] = item
	}

	selected := make([]services.DemandItem, 0, len(req.DemandIDs))
	for _, id := range req.DemandIDs {
		item, ok := byID[id]
		if !ok {
			respondError(c, http.StatusBadRequest, "DEMAND_NOT_FOUND", "Demand item "+id+" is not outstanding")
			return
		}
		selected = append(selected, item)
	}

	updated, order, err := services.IssueWorkOrder(cols, selected, req.Vendor, req.Stage, req.TargetDate, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save work order")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}
