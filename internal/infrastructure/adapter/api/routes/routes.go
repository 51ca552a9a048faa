package routes

import (
	coreport "github.com/amirhossein-jamali/txn-categorizer/internal/domain/port/core"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/txn-categorizer/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything SetupRoutes mounts
type Handlers struct {
	Health         *handler.HealthHandler
	Upload         *handler.UploadHandler
	Transaction    *handler.TransactionHandler
	Review         *handler.ReviewHandler
	Rule           *handler.RuleHandler
	EntityDefaults *handler.EntityDefaults
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth gin.HandlerFunc) {
	// GET /health
	router.GET("/health", h.Health.Health)

	api := router.Group("/", auth)

	// GET /categories
	api.GET("/categories", h.Review.ListCategories)

	entities := api.Group("/entities/:entityId", middleware.EntityScope(), h.EntityDefaults.Ensure)
	{
		entities.POST("/uploads", h.Upload.CreateUpload)
		entities.POST("/uploads/csv", h.Upload.UploadCSV)
		entities.POST("/uploads/extracted", h.Upload.UploadExtracted)
		entities.GET("/uploads/:uploadId", h.Upload.GetUpload)
		entities.POST("/uploads/:uploadId/commit", h.Upload.CommitUpload)

		entities.POST("/transactions", h.Transaction.Ingest)
		entities.POST("/transactions/:normalizedId/override", h.Transaction.Override)

		entities.GET("/review-queue", h.Review.ListReviewQueue)

		entities.GET("/rules", h.Rule.ListRules)
		entities.POST("/rules", h.Rule.CreateRule)
		entities.PATCH("/rules/:ruleId", h.Rule.UpdateRule)
		entities.GET("/override-rules", h.Rule.ListOverrideRules)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
