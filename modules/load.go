package modules

import (
	"github.com/storo-shop/backend/modules/catalog"
	"github.com/storo-shop/backend/modules/chat"
	"github.com/storo-shop/backend/modules/core"
	"github.com/storo-shop/backend/modules/orders"
	"github.com/storo-shop/backend/modules/superadmin"
	"github.com/storo-shop/backend/modules/website"
	"github.com/storo-shop/backend/pkg/application"
)

// BuiltInModules lists every module in registration order. Core goes
// first: its tenants table is referenced by everyone else's schema.
func BuiltInModules() []application.Module {
	return []application.Module{
		core.NewModule(),
		catalog.NewModule(),
		orders.NewModule(),
		chat.NewModule(),
		website.NewModule(),
		superadmin.NewModule(),
	}
}

// Load registers the built-in modules against the application.
func Load(app application.Application) error {
	return application.Load(app, BuiltInModules()...)
}
