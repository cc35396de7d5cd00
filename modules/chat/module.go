package chat

import (
	"context"
	"embed"

	"github.com/storo-shop/backend/modules/chat/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/chat/presence"
	"github.com/storo-shop/backend/modules/chat/presentation/controllers"
	"github.com/storo-shop/backend/modules/chat/services"
	corepersistence "github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/configuration"
)

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Name() string {
	return "chat"
}

func (m *Module) Register(app application.Application) error {
	app.Migrations().RegisterSchema("chat", &MigrationFiles)

	conf := configuration.Use()
	var store presence.Store
	if conf.Chat.PresenceBroker == "redis" {
		redisStore, err := presence.NewRedisStore(conf.Chat.RedisURL, conf.Chat.TypingTTL)
		if err != nil {
			return err
		}
		store = redisStore
	} else {
		memStore := presence.NewMemoryStore(conf.Chat.TypingTTL)
		memStore.StartSweep(context.Background(), conf.Chat.SweepInterval)
		store = memStore
	}

	chatRepo := persistence.NewChatRepository()
	app.RegisterServices(
		services.NewChatService(chatRepo, store, app.EventPublisher()),
		services.NewSweeper(
			corepersistence.NewTenantRepository(),
			chatRepo,
			app.Logger(),
			conf.Chat.MissedAfter,
			conf.Chat.SweepInterval,
		),
	)

	app.RegisterControllers(
		controllers.NewChatController(app),
	)
	return nil
}
