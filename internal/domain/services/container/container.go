package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/A-Basit02/Disaster-Management-App/internal/domain/services"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/cache"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
)

// ServiceContainer wires every service to the shared database, config and cache
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	cache  cache.Store

	jwtService          services.InterfaceJWTService
	authService         services.InterfaceAuthService
	emergencyService    services.InterfaceEmergencyService
	taskService         services.InterfaceTaskService
	shelterService      services.InterfaceShelterService
	resourceService     services.InterfaceResourceService
	notificationService services.InterfaceNotificationService

	mu sync.RWMutex
}

// NewServiceContainer builds all services. A nil store falls back to memory.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, store cache.Store) *ServiceContainer {
	if db == nil {
		panic("container: database is nil")
	}
	if cfg == nil {
		panic("container: config is nil")
	}
	if store == nil {
		store = cache.NewMemoryStore()
	}

	c := &ServiceContainer{
		db:     db,
		config: cfg,
		cache:  store,
	}
	c.initializeServices()
	return c
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)
	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)

	c.emergencyService = services.NewEmergencyService(c.db, c.config)
	c.taskService = services.NewTaskService(c.db, c.config)
	c.shelterService = services.NewShelterService(c.db, c.config)
	c.resourceService = services.NewResourceService(c.db, c.config)
	c.notificationService = services.NewNotificationService(c.db, c.config)
}

// GetService returns a service by name, or nil for an unknown name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "cache":
		return c.cache
	case "jwt":
		return c.jwtService
	case "auth":
		return c.authService
	case "emergency":
		return c.emergencyService
	case "task":
		return c.taskService
	case "shelter":
		return c.shelterService
	case "resource":
		return c.resourceService
	case "notification":
		return c.notificationService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetCache returns the response cache
func (c *ServiceContainer) GetCache() cache.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache
}
