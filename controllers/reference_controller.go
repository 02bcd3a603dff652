package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/models"
)

// GetBuyers handles GET /api/v1/buyers - the buyer directory used to
// pre-fill dispatch consignee defaults.
func GetBuyers(c *gin.Context) {
	db := config.GetDB()

	var buyers []models.Buyer
	if err := db.Preload("Addresses").Preload("Contacts").Order("buyers.name").Find(&buyers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load buyers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    buyers,
	})
}

// GetCompanyDetails handles GET /api/v1/company - letterhead data for
// external report generation.
func GetCompanyDetails(c *gin.Context) {
	db := config.GetDB()

	var company models.CompanyDetails
	if err := db.First(&company).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			respondError(c, http.StatusNotFound, "COMPANY_NOT_FOUND", "Company details have not been set up")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load company details")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    company,
	})
}
