package handlers

import (
	"github.com/Madhavladani/adeptjs64/domain/services"
	"github.com/Madhavladani/adeptjs64/pkg/scheduler"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService    services.CategoryService
	SubcategoryService services.SubcategoryService
	ComponentService   services.ComponentService
	MenuService        services.MenuService
	ProfileService     services.ProfileService
	JWTSecret          string
	HealthChecks       map[string]HealthCheck // ชื่อ dependency -> ping
	ScheduledJobs      func() []scheduler.JobInfo
}

// Handlers contains all HTTP handlers
type Handlers struct {
	CategoryHandler    *CategoryHandler
	SubcategoryHandler *SubcategoryHandler
	ComponentHandler   *ComponentHandler
	MenuHandler        *MenuHandler
	ProfileHandler     *ProfileHandler
	HealthHandler      *HealthHandler
	JWTSecret          string
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		CategoryHandler:    NewCategoryHandler(services.CategoryService),
		SubcategoryHandler: NewSubcategoryHandler(services.SubcategoryService),
		ComponentHandler:   NewComponentHandler(services.ComponentService),
		MenuHandler:        NewMenuHandler(services.MenuService),
		ProfileHandler:     NewProfileHandler(services.ProfileService),
		HealthHandler:      NewHealthHandler(services.HealthChecks, services.ScheduledJobs),
		JWTSecret:          services.JWTSecret,
	}
}
