package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-api/models"
	"github.com/stitchline/stitchline-api/services"
)

// loadCollections materializes the four top-level collections the engine
// operates on. The engine only ever sees these fully loaded snapshots.
func loadCollections(db *gorm.DB) (models.Collections, error) {
	var cols models.Collections

	if err := db.
		Preload("Styles", func(tx *gorm.DB) *gorm.DB { return tx.Order("styles.id") }).
		Preload("Styles.SamplingItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("sampling_items.id") }).
		Preload("Styles.BOMItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("bom_items.id") }).
		Preload("Styles.PPMeeting.Sections").
		Preload("WorkOrderRequests").
		Order("jobs.id").
		Find(&cols.Jobs).Error; err != nil {
		return models.Collections{}, err
	}

	if err := db.Order("development_samples.id").Find(&cols.DevSamples).Error; err != nil {
		return models.Collections{}, err
	}

	if err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("parcel_items.position") }).
		Order("parcels.id").
		Find(&cols.Parcels).Error; err != nil {
		return models.Collections{}, err
	}

	if err := db.
		Preload("Items").
		Order("issued_work_orders.id").
		Find(&cols.WorkOrders).Error; err != nil {
		return models.Collections{}, err
	}

	return cols, nil
}

// saveCollections persists the replacement collections an engine
// operation returned. All collections touched by one command are written
// in the same request so the next read never sees a partial effect.
func saveCollections(db *gorm.DB, cols models.Collections) error {
	session := db.Session(&gorm.Session{FullSaveAssociations: true})

	if len(cols.Jobs) > 0 {
		if err := session.Save(&cols.Jobs).Error; err != nil {
			return err
		}
	}
	if len(cols.DevSamples) > 0 {
		if err := session.Save(&cols.DevSamples).Error; err != nil {
			return err
		}
	}
	if len(cols.Parcels) > 0 {
		if err := session.Save(&cols.Parcels).Error; err != nil {
			return err
		}
	}
	if len(cols.WorkOrders) > 0 {
		if err := session.Save(&cols.WorkOrders).Error; err != nil {
			return err
		}
	}
	return nil
}

// respondError writes the standard error envelope.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondEngineError maps an engine error to the envelope: validation
// errors are the user's correctable input (400), anything else is a 500.
func respondEngineError(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		respondError(c, http.StatusBadRequest, verr.Code, verr.Message)
		return
	}
	respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
