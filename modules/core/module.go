package core

import (
	"embed"

	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/presentation/controllers"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "core"
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema("core", &MigrationFiles)

	tenantRepo := persistence.NewTenantRepository()
	userRepo := persistence.NewUserRepository()

	app.RegisterServices(
		services.NewTenantService(tenantRepo, app.EventPublisher()),
		services.NewUserService(userRepo, app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewHealthController(app),
		controllers.NewUsersController(app),
	)
	return nil
}
