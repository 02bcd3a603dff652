package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/services"
)

// GetTrackingRows handles GET /api/v1/tracking/rows - the unified
// trackable row list, optionally narrowed by ?search=
func GetTrackingRows(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load tracking data")
		return
	}

	rows := services.BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels)
	rows = services.FilterRows(rows, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// GetApprovalTracker handles GET /api/v1/tracking/approvals, optionally
// narrowed by ?search=
func GetApprovalTracker(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load tracking data")
		return
	}

	rows := services.ApprovalTrackerRows(cols.Jobs)
	rows = services.FilterApprovalRows(rows, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// GetCommentsTracker handles GET /api/v1/tracking/comments, optionally
// narrowed by ?search=
func GetCommentsTracker(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load tracking data")
		return
	}

	rows := services.CommentsTrackerRows(services.BuildTrackableRows(cols.Jobs, cols.DevSamples, cols.Parcels))
	rows = services.FilterCommentsRows(rows, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// RecordFeedbackRequest represents the request body for recording feedback
type RecordFeedbackRequest struct {
	Origin     services.RowOrigin `json:"origin" binding:"required"`
	Note       string             `json:"note"`
	From       string             `json:"from"`
	ReceivedOn time.Time          `json:"received_on" binding:"required"`
	Outcome    string             `json:"outcome" binding:"required,oneof=Approved Rejected Commented"`
}

// RecordFeedback handles POST /api/v1/tracking/feedback
func RecordFeedback(c *gin.Context) {
	var req RecordFeedbackRequest
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

	updated, err := services.RecordFeedback(cols, req.Origin, services.Feedback{
		Note:       req.Note,
		From:       req.From,
		ReceivedOn: req.ReceivedOn,
		Outcome:    req.Outcome,
	}, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback recorded",
	})
}

// AdvanceStageRequest represents the request body for a WIP stage transition
type AdvanceStageRequest struct {
	Origin           services.RowOrigin `json:"origin" binding:"required"`
	TargetStage      string             `json:"target_stage" binding:"required"`
	QualityConfirmed bool               `json:"quality_confirmed"`
}

// AdvanceStage handles POST /api/v1/tracking/stage
func AdvanceStage(c *gin.Context) {
	var req AdvanceStageRequest
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

	updated, err := services.AdvanceStage(cols, req.Origin, req.TargetStage, req.QualityConfirmed, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save stage transition")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stage updated",
	})
}

// BuildReminderRequest represents the request body for a reminder batch
type BuildReminderRequest struct {
	RowIDs []string `json:"row_ids" binding:"required"`
}

// BuildReminder handles POST /api/v1/tracking/reminders - assembles a
// follow-up reminder batch for one buyer; sending it is external.
func BuildReminder(c *gin.Context) {
	var req BuildReminderRequest
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

	batch, err := services.BuildReminderBatch(selected)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    batch,
	})
}

// selectRowsByID resolves row ids against a fresh aggregation, keeping
// the request's selection order.
func selectRowsByID(rows []services.TrackableRow, ids []string) []services.TrackableRow {
	byID := make(map[string]services.TrackableRow, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	selected := make([]services.TrackableRow, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			selected = append(selected, row)
		}
	}
	return selected
}
