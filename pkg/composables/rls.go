package composables

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/storo-shop/backend/pkg/configuration"
)

// ApplyTenantRLS binds the resolved tenant to the transaction's RLS session
// variable. With RLS_ENFORCE=enforce the database itself rejects rows of
// other tenants, even for queries that forget the tenant filter.
func ApplyTenantRLS(ctx context.Context, tx pgx.Tx) error {
	if configuration.Use().Tenancy.RLSEnforce != "enforce" {
		return nil
	}
	tenantID, err := UseTenantID(ctx)
	if err != nil {
		return fmt.Errorf("rls requires tenant in context: %w", err)
	}
	_, err = tx.Exec(ctx, "SELECT set_config('app.current_tenant', $1, true)", tenantID.String())
	if err != nil {
		return fmt.Errorf("failed to set rls tenant context: %w", err)
	}
	return nil
}
