package website

import (
	"embed"

	"github.com/storo-shop/backend/modules/website/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/website/presentation/controllers"
	"github.com/storo-shop/backend/modules/website/services"
	"github.com/storo-shop/backend/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "website"
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema("website", &MigrationFiles)

	app.RegisterServices(
		services.NewWebsiteService(
			persistence.NewSettingsRepository(),
			persistence.NewBlogPostRepository(),
		),
	)

	app.RegisterControllers(
		controllers.NewWebsiteController(app),
	)
	return nil
}
