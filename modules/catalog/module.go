package catalog

import (
	"embed"

	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/catalog/presentation/controllers"
	"github.com/storo-shop/backend/modules/catalog/services"
	"github.com/storo-shop/backend/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "catalog"
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema("catalog", &MigrationFiles)

	app.RegisterServices(
		services.NewCategoryService(persistence.NewCategoryRepository()),
		services.NewProductService(persistence.NewProductRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewCategoriesController(app),
		controllers.NewProductsController(app),
	)
	return nil
}
