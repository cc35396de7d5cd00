package orders

import (
	"embed"

	"github.com/storo-shop/backend/modules/orders/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/orders/presentation/controllers"
	"github.com/storo-shop/backend/modules/orders/services"
	"github.com/storo-shop/backend/pkg/application"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "orders"
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema("orders", &MigrationFiles)

	app.RegisterServices(
		services.NewOrderService(persistence.NewOrderRepository(), app.EventPublisher()),
	)

	app.RegisterControllers(
		controllers.NewOrdersController(app),
	)
	return nil
}
