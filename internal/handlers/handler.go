package handlers

import (
	"vitta/internal/logger"
	"vitta/internal/models"
	"vitta/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger

	signInLimiter  *ipLimiter
	allowedOrigins []string
}

// Option customizes a Handler.
type Option func(*Handler)

// WithSignInLimit caps sign-in attempts per client IP.
func WithSignInLimit(perMinute float64, burst int) Option {
	return func(h *Handler) {
		if perMinute > 0 && burst > 0 {
			h.signInLimiter = newIPLimiter(perMinute, burst)
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.metricsMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live alert stream (HTTP upgrade) on the same port
	router.GET("/ws/alerts", h.userIdMiddleware, h.wsAlerts)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.rateLimit(h.signInLimiter), h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerAlertRoutes(api)
		h.registerMachineRoutes(api)
		h.registerMaintenanceRoutes(api)
		h.registerActivityRoutes(api)
		h.registerUserRoutes(api)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listAlerts)
		alerts.GET("/summary", h.alertSummary)
	}
}

func (h *Handler) registerMachineRoutes(api *gin.RouterGroup) {
	machines := api.Group("/machines")
	{
		machines.GET("", h.listMachines)
		machines.GET("/:id", h.getMachine)
		machines.GET("/:id/maintenance", h.listMachineMaintenance)
		machines.POST("", requireRole(models.RoleTechnician), h.createMachine)
		machines.PUT("/:id", requireRole(models.RoleTechnician), h.updateMachine)
		machines.DELETE("/:id", requireRole(models.RoleAdmin), h.deleteMachine)
	}
}

func (h *Handler) registerMaintenanceRoutes(api *gin.RouterGroup) {
	maintenance := api.Group("/maintenance")
	{
		maintenance.GET("", h.listMaintenance)
		maintenance.GET("/:id", h.getMaintenance)
		maintenance.POST("", requireRole(models.RoleTechnician), h.createMaintenance)
		maintenance.PUT("/:id", requireRole(models.RoleTechnician), h.updateMaintenance)
		maintenance.DELETE("/:id", requireRole(models.RoleAdmin), h.deleteMaintenance)
	}
}

func (h *Handler) registerActivityRoutes(api *gin.RouterGroup) {
	api.GET("/activity", h.getActivity)
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users", requireRole(models.RoleAdmin))
	{
		users.GET("", h.listUsers)
		users.PATCH("/:id/role", h.setUserRole)
		users.DELETE("/:id", h.deleteUser)
	}
}
