package superadmin

import (
	"github.com/storo-shop/backend/modules/superadmin/presentation/controllers"
	"github.com/storo-shop/backend/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "superadmin"
}

// Register wires only controllers; the module reuses the core tenant
// service and owns no tables of its own.
func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewTenantsController(app),
	)
	return nil
}
