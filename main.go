package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stitchline/stitchline-api/config"
	"github.com/stitchline/stitchline-api/controllers"
	"github.com/stitchline/stitchline-api/middleware"
	"github.com/stitchline/stitchline-api/models"
	"github.com/stitchline/stitchline-api/services"
)

func main() {
	// Basic logging
	log.Println("Starting Stitchline production tracking API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Style{},
		&models.SamplingItem{},
		&models.BOMItem{},
		&models.DevelopmentSample{},
		&models.Parcel{},
		&models.ParcelItem{},
		&models.WorkOrderRequest{},
		&models.IssuedWorkOrder{},
		&models.IssuedWorkOrderItem{},
		&models.PPMeeting{},
		&models.PPMeetingSection{},
		&models.Buyer{},
		&models.BuyerAddress{},
		&models.BuyerContact{},
		&models.CompanyDetails{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Initialize S3-backed attachment storage when a bucket is configured
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3 service: %v", err)
		}
		services.InitAttachmentService(s3Service)
		log.Println("Attachment storage initialized")
	} else {
		log.Println("AWS_S3_BUCKET not set, attachment uploads are disabled")
	}

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.Default())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check endpoint
		v1.GET("/health", healthCheck)

		// Database status endpoint
		v1.GET("/database/status", databaseStatus)

		// Everything else requires a valid JWT
		authorized := v1.Group("")
		authorized.Use(middleware.EnsureValidToken(cfg))
		{
			// User profiles
			authorized.POST("/users", controllers.CreateUser)
			authorized.GET("/users/me", controllers.GetMyProfile)
			authorized.PUT("/users/me", controllers.UpdateMyProfile)

			// Tracking views
			authorized.GET("/tracking/rows", controllers.GetTrackingRows)
			authorized.GET("/tracking/approvals", controllers.GetApprovalTracker)
			authorized.GET("/tracking/comments", controllers.GetCommentsTracker)

			// Tracking mutations
			authorized.POST("/tracking/feedback", controllers.RecordFeedback)
			authorized.POST("/tracking/stage", controllers.AdvanceStage)
			authorized.POST("/tracking/reminders", controllers.BuildReminder)

			// Parcels
			authorized.GET("/parcels", controllers.ListParcels)
			authorized.POST("/parcels/dispatch", controllers.DispatchParcel)
			authorized.PATCH("/parcels/:id/received", controllers.MarkParcelReceived)
			authorized.PATCH("/parcels/:id/tracking", controllers.UpdateParcelTracking)

			// Work orders
			authorized.GET("/workorders", controllers.ListWorkOrders)
			authorized.GET("/workorders/demand", controllers.GetWorkOrderDemand)
			authorized.POST("/workorders/issue", controllers.IssueWorkOrder)

			// PP meetings
			authorized.GET("/ppmeetings", controllers.GetPPMeetings)
			authorized.GET("/jobs/:jobId/styles/:styleId/ppmeeting", controllers.GetMeetingNotes)
			authorized.PUT("/jobs/:jobId/styles/:styleId/ppmeeting", controllers.SaveMeetingNotes)

			// Reference data
			authorized.GET("/buyers", controllers.GetBuyers)
			authorized.GET("/company", controllers.GetCompanyDetails)

			// Attachments
			authorized.POST("/uploads/attachments", controllers.UploadAttachment)
			authorized.GET("/uploads/:filename", controllers.GetUploadedFile)
		}
	}

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stitchline production tracking API is running",
	})
}

// databaseStatus checks database connectivity and returns table information
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to get database instance",
			},
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_CONNECTION_ERROR",
				"message": "Database connection failed",
			},
		})
		return
	}

	// Get list of tables
	var tables []string
	if err := db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public'").Scan(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_QUERY_ERROR",
				"message": "Failed to query tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
		"tables":  tables,
	})
}
