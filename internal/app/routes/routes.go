package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/A-Basit02/Disaster-Management-App/docs"
	"github.com/A-Basit02/Disaster-Management-App/internal/app/controllers"
	"github.com/A-Basit02/Disaster-Management-App/internal/app/middleware"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/models"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services/container"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/cache"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/metrics"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// SetupRouter builds the gin engine with every route of the API.
// A nil store keeps cached responses in memory.
func SetupRouter(db *gorm.DB, cfg *config.Config, store cache.Store) *gin.Engine {
	if err := controllers.RegisterValidators(); err != nil {
		logger.Error("register validators: %v", err)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	serviceContainer := container.NewServiceContainer(db, cfg, store)

	r.GET("/", controllers.HandleHealthFunc(serviceContainer, "banner"))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.NoRoute(controllers.HandleHealthFunc(serviceContainer, "notFound"))

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes mounts the API under /api
func registerRoutes(r *gin.Engine, container *container.ServiceContainer) {
	cfg := container.GetConfig()

	api := r.Group("/api")
	if cfg.RateLimitRPS > 0 {
		api.Use(middleware.IPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	api.GET("/health", controllers.HandleHealthFunc(container, "health"))

	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes mounts the routes that need no token
func registerPublicRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	authGroup := api.Group("/auth")
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes mounts the routes behind the bearer token and role gates
func registerAuthenticatedRoutes(api *gin.RouterGroup, container *container.ServiceContainer) {
	auth := middleware.NewAuth(container.GetService("auth").(services.InterfaceAuthService))
	store := container.GetCache()
	cached := middleware.Cache(store, middleware.CacheConfig{Expiration: container.GetConfig().CacheTTL})
	invalidate := middleware.InvalidateCache(store)

	protected := api.Group("")
	protected.Use(auth.Authenticate())

	protected.GET("/auth/profile", controllers.HandleAuthFunc(container, "profile"))

	// emergencies
	emergencies := protected.Group("/emergencies")
	emergencies.POST("", invalidate, controllers.HandleEmergencyFunc(container, "createReport"))
	emergencies.GET("", auth.Require(models.CapViewAllEmergencies), controllers.HandleEmergencyFunc(container, "listReports"))
	emergencies.GET("/my-reports", controllers.HandleEmergencyFunc(container, "listMyReports"))
	emergencies.GET("/analytics", auth.Require(models.CapViewAnalytics), cached, controllers.HandleEmergencyFunc(container, "analytics"))
	emergencies.GET("/:id", controllers.HandleEmergencyFunc(container, "getReport"))
	emergencies.PATCH("/:id/status", auth.Require(models.CapUpdateEmergencyStatus), invalidate, controllers.HandleEmergencyFunc(container, "updateStatus"))

	// shelters
	shelters := protected.Group("/shelters")
	shelters.GET("", controllers.HandleShelterFunc(container, "listShelters"))
	shelters.GET("/available", controllers.HandleShelterFunc(container, "listAvailable"))
	shelters.GET("/analytics/occupancy", auth.Require(models.CapViewAnalytics), cached, controllers.HandleShelterFunc(container, "occupancyAnalytics"))
	shelters.GET("/:id", controllers.HandleShelterFunc(container, "getShelter"))
	shelters.POST("", auth.Require(models.CapManageShelters), invalidate, controllers.HandleShelterFunc(container, "createShelter"))
	shelters.PATCH("/:id/occupancy", auth.Require(models.CapManageShelters), invalidate, controllers.HandleShelterFunc(container, "updateOccupancy"))

	// resources
	resources := protected.Group("/resources")
	resources.GET("", controllers.HandleResourceFunc(container, "listResources"))
	resources.GET("/available", controllers.HandleResourceFunc(container, "listAvailable"))
	resources.GET("/distributions", controllers.HandleResourceFunc(container, "listDistributions"))
	resources.POST("", auth.Require(models.CapManageResources), controllers.HandleResourceFunc(container, "createResource"))
	resources.PATCH("/:id", auth.Require(models.CapManageResources), controllers.HandleResourceFunc(container, "updateResource"))
	resources.POST("/distribute", auth.Require(models.CapManageResources), controllers.HandleResourceFunc(container, "distribute"))
	resources.PATCH("/distributions/:id", auth.Require(models.CapManageResources), controllers.HandleResourceFunc(container, "updateDistribution"))

	// tasks; the report cascades change analytics
	tasks := protected.Group("/tasks")
	tasks.GET("/my-tasks", auth.Require(models.CapViewOwnTasks), controllers.HandleTaskFunc(container, "listMyTasks"))
	tasks.GET("", auth.Require(models.CapViewTasks), controllers.HandleTaskFunc(container, "listTasks"))
	tasks.GET("/:id", auth.Require(models.CapViewTasks), controllers.HandleTaskFunc(container, "getTask"))
	tasks.POST("", auth.Require(models.CapManageTasks), invalidate, controllers.HandleTaskFunc(container, "createTask"))
	tasks.PATCH("/:id/assign", auth.Require(models.CapManageTasks), invalidate, controllers.HandleTaskFunc(container, "assignTask"))
	tasks.PATCH("/:id/status", auth.Require(models.CapUpdateTaskStatus), invalidate, controllers.HandleTaskFunc(container, "updateTaskStatus"))

	// notifications
	notifications := protected.Group("/notifications")
	notifications.GET("/active", controllers.HandleNotificationFunc(container, "listActive"))
	notifications.GET("", auth.Require(models.CapManageNotifications), controllers.HandleNotificationFunc(container, "listAll"))
	notifications.GET("/:id", controllers.HandleNotificationFunc(container, "getNotification"))
	notifications.POST("", auth.Require(models.CapManageNotifications), controllers.HandleNotificationFunc(container, "createNotification"))
	notifications.PATCH("/:id", auth.Require(models.CapManageNotifications), controllers.HandleNotificationFunc(container, "updateNotification"))
	notifications.DELETE("/:id", auth.Require(models.CapManageNotifications), controllers.HandleNotificationFunc(container, "deleteNotification"))
}
