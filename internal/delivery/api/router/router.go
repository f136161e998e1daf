// Package router contains routing for the admin API.
package router

import (
	"landshare/internal/delivery/api/middleware"
	"landshare/internal/delivery/api/router/handler"
	"landshare/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RequestHandler *handler.RequestHandler
	BulkHandler    *handler.BulkHandler
	QueueHandler   *handler.QueueHandler
	AuthMiddleware *middleware.AdminAuthMiddleware
	Recorder       *metrics.Recorder
}

// router holds all the handlers that need to be registered.
type router struct {
	requestHandler *handler.RequestHandler
	bulkHandler    *handler.BulkHandler
	queueHandler   *handler.QueueHandler
	authMiddleware *middleware.AdminAuthMiddleware
	recorder       *metrics.Recorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		requestHandler: params.RequestHandler,
		bulkHandler:    params.BulkHandler,
		queueHandler:   params.QueueHandler,
		authMiddleware: params.AuthMiddleware,
		recorder:       params.Recorder,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.recorder.Handler()))

	// Every API v1 route acts on behalf of an authenticated admin
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	requestsGroup := apiV1.Group("/requests")
	{
		// Static segments first so they never match as an :id
		requestsGroup.POST("/bulk/approve", r.bulkHandler.BulkApprove)
		requestsGroup.POST("/bulk/reject", r.bulkHandler.BulkReject)
		requestsGroup.POST("/bulk/verify", r.bulkHandler.BulkVerify)
		requestsGroup.POST("/sweep", r.bulkHandler.Sweep)
		requestsGroup.POST("/auto-approve", r.bulkHandler.AutoApprove)
		requestsGroup.GET("/high-priority", r.bulkHandler.HighPriority)

		requestsGroup.POST("/:id/approve", r.requestHandler.Approve)
		requestsGroup.POST("/:id/reject", r.requestHandler.Reject)
		requestsGroup.POST("/:id/complete", r.requestHandler.Complete)
		requestsGroup.POST("/:id/verify", r.requestHandler.Verify)
	}

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/bulk/status", r.bulkHandler.BulkUserStatus)
	}

	queueGroup := apiV1.Group("/queue")
	{
		queueGroup.POST("/scan", r.queueHandler.Scan)
		queueGroup.POST("/process", r.queueHandler.Process)
		queueGroup.GET("/stats", r.queueHandler.Stats)
	}
}
