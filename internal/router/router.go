package router

import (
	"github.com/gin-gonic/gin"

	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/database"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/handlers"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/middleware"
	"github.com/manikantxampleserv/dcc-sfa-sub007/internal/service"
)

// SetupRouter configures all API routes
func SetupRouter(
	approvalService *service.ApprovalService,
	workflowService *service.WorkflowService,
	db *database.DB,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CorrelationID())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"status": "healthy"})
	})

	requestHandler := handlers.NewRequestHandler(approvalService)
	workflowHandler := handlers.NewWorkflowHandler(workflowService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		requests := v1.Group("/requests")
		{
			requests.POST("", requestHandler.CreateRequest)
			requests.POST("/action", requestHandler.TakeAction)
			requests.GET("", requestHandler.ListRequests)
			requests.GET("/:requestId", requestHandler.GetRequest)
		}

		v1.GET("/approvals/pending", requestHandler.ListPendingApprovals)

		workflows := v1.Group("/workflows")
		{
			workflows.POST("", workflowHandler.CreateStep)
			workflows.GET("", workflowHandler.ListSteps)
			workflows.DELETE("/:stepId", workflowHandler.DeactivateStep)
		}
	}

	return router
}
