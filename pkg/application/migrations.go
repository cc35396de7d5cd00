package application

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const schemaDir = "infrastructure/persistence/schema"

type moduleSchema struct {
	module string
	fs     *embed.FS
}

type migrationRegistry struct {
	schemas []moduleSchema
}

func (m *migrationRegistry) RegisterSchema(module string, fs *embed.FS) {
	m.schemas = append(m.schemas, moduleSchema{module: module, fs: fs})
}

// Run applies every registered schema in registration order. Each module
// versions independently in its own goose table.
func (m *migrationRegistry) Run(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	for _, schema := range m.schemas {
		goose.SetTableName("goose_" + schema.module)
		goose.SetBaseFS(schema.fs)
		if err := goose.UpContext(ctx, db, schemaDir); err != nil {
			goose.SetBaseFS(nil)
			return err
		}
	}
	goose.SetBaseFS(nil)
	return nil
}
