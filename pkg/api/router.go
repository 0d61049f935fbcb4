package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/homehub/pkg/api/handlers"
	"github.com/urmzd/homehub/pkg/device"
	"github.com/urmzd/homehub/pkg/device/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller device.Controller
	subscriber device.EventSubscriber
	validator  *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(controller device.Controller, subscriber device.EventSubscriber, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
		subscriber: subscriber,
		validator:  validator,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	// Health check at root
	healthHandler := handlers.NewHealthHandler(r.controller)
	r.engine.GET("/health", healthHandler.Health)

	devicesHandler := handlers.NewDevicesHandler(r.controller)
	controlHandler := handlers.NewControlHandler(r.controller, r.validator)
	eventsHandler := handlers.NewEventsHandler(r.subscriber)

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)
		v1.GET("/events", eventsHandler.Events)

		devices := v1.Group("/devices")
		{
			devices.GET("", devicesHandler.ListDevices)
			devices.GET("/:id", devicesHandler.GetDevice)
			devices.GET("/:id/state", devicesHandler.GetState)
			devices.GET("/:id/describe", devicesHandler.Describe)
			devices.POST("/:id/actions", controlHandler.ExecuteAction)
		}

		hub := v1.Group("/hub")
		{
			hub.GET("", controlHandler.GetHub)
			hub.POST("/turn-off-all", controlHandler.TurnOffAll)
		}
	}
}

// Handler exposes the engine as an http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
