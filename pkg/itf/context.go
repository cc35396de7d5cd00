// Package itf provides an integration test harness: each test gets its own
// database, a migrated application instance, a seeded tenant and a context
// carrying the same values the middleware chain would install.
package itf

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/configuration"
)

type TestEnvironment struct {
	Ctx    context.Context
	Pool   *pgxpool.Pool
	Tx     pgx.Tx
	App    application.Application
	Tenant *composables.Tenant
}

type TestContext struct {
	modules []application.Module
	dbName  string
}

func NewTestContext() *TestContext {
	return &TestContext{}
}

// WithModules restricts the application to the given modules. By default
// every built-in module is loaded.
func (tc *TestContext) WithModules(mods ...application.Module) *TestContext {
	tc.modules = append(tc.modules, mods...)
	return tc
}

// WithDBName overrides the database name, which otherwise derives from the
// test name.
func (tc *TestContext) WithDBName(name string) *TestContext {
	tc.dbName = name
	return tc
}

func (tc *TestContext) Build(tb testing.TB) *TestEnvironment {
	tb.Helper()

	dbName := tc.dbName
	if dbName == "" {
		dbName = tb.Name()
	}
	CreateDB(dbName)
	pool := NewPool(DbOpts(dbName))

	ctx := composables.WithPool(context.Background(), pool)

	app, err := SetupApplication(ctx, pool, tc.modules...)
	if err != nil {
		tb.Fatalf("failed to setup application: %v", err)
	}

	tenant, err := CreateTestTenant(ctx, pool)
	if err != nil {
		tb.Fatalf("failed to create test tenant: %v", err)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		tb.Fatalf("failed to begin transaction: %v", err)
	}

	ctx = composables.WithTx(ctx, tx)
	ctx = composables.WithTenant(ctx, tenant)
	ctx = composables.WithParams(ctx, DefaultParams())
	ctx = composables.WithLogger(ctx, logrus.NewEntry(configuration.Use().Logger()))

	tb.Cleanup(func() {
		if err := tx.Rollback(context.Background()); err != nil && err != pgx.ErrTxClosed {
			tb.Logf("failed to rollback transaction: %v", err)
		}
		pool.Close()
	})

	return &TestEnvironment{
		Ctx:    ctx,
		Pool:   pool,
		Tx:     tx,
		App:    app,
		Tenant: tenant,
	}
}

// GetService pulls a registered service out of the environment's application.
func GetService[T any](env *TestEnvironment) *T {
	var zero T
	return env.App.Service(zero).(*T)
}
