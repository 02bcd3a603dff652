package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/models"
	"github.com/stitchline/stitchline-api/services"
)

// GetPPMeetings handles GET /api/v1/ppmeetings - one row per style with
// its meeting state, optionally narrowed by ?search=.
func GetPPMeetings(c *gin.Context) {
	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load meeting data")
		return
	}

	rows := services.PPMeetingRows(cols.Jobs)
	rows = services.FilterPPMeetingRows(rows, c.Query("search"))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// GetMeetingNotes handles GET /api/v1/jobs/:jobId/styles/:styleId/ppmeeting -
// the style's meeting sections with empty defaults synthesized for
// operations never edited.
func GetMeetingNotes(c *gin.Context) {
	jobID, styleID, ok := meetingPathIDs(c)
	if !ok {
		return
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load meeting data")
		return
	}

	style := findStyleIn(cols, jobID, styleID)
	if style == nil {
		respondError(c, http.StatusNotFound, "STYLE_NOT_FOUND", "Style not found")
		return
	}

	data := gin.H{
		"meeting_status": style.MeetingStatus,
		"meeting_date":   style.MeetingDate,
		"sections":       services.MeetingSections(style),
	}
	if style.PPMeeting != nil {
		data["inspection_date"] = style.PPMeeting.InspectionDate
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// SaveMeetingNotesRequest represents the request body for saving PP-meeting notes
type SaveMeetingNotesRequest struct {
	InspectionDate time.Time                 `json:"inspection_date" binding:"required"`
	Sections       []models.PPMeetingSection `json:"sections"`
}

// SaveMeetingNotes handles PUT /api/v1/jobs/:jobId/styles/:styleId/ppmeeting
func SaveMeetingNotes(c *gin.Context) {
	jobID, styleID, ok := meetingPathIDs(c)
	if !ok {
		return
	}

	var req SaveMeetingNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data")
		return
	}

	db := config.GetDB()
	cols, err := loadCollections(db)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load meeting data")
		return
	}

	updated, err := services.SaveMeetingNotes(cols, jobID, styleID, req.InspectionDate, req.Sections, time.Now())
	if err != nil {
		respondEngineError(c, err)
		return
	}

	if err := saveCollections(db, updated); err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to save meeting notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Meeting notes saved",
	})
}

func meetingPathIDs(c *gin.Context) (uint, uint, bool) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Job ID must be numeric")
		return 0, 0, false
	}
	styleID, err := strconv.ParseUint(c.Param("styleId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "Style ID must be numeric")
		return 0, 0, false
	}
	return uint(jobID), uint(styleID), true
}

func findStyleIn(cols models.Collections, jobID, styleID uint) *models.Style {
	for ji := range cols.Jobs {
		if cols.Jobs[ji].ID != jobID {
			continue
		}
		styles := cols.Jobs[ji].Styles
		for si := range styles {
			if styles[si].ID == styleID {
				return &styles[si]
			}
		}
	}
	return nil
}
