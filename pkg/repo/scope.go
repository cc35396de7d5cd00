package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/storo-shop/backend/pkg/composables"
)

// TenantColumn is the attribute every scoped table carries.
const TenantColumn = "tenant_id"

// ErrNoTenantScope is returned when a scoped data call has neither an
// explicit tenant constraint nor a tenant in the ambient context. This is a
// hard failure: an unscoped query against a scoped table must never run.
var ErrNoTenantScope = fmt.Errorf("no tenant scope: query against a tenant-scoped table without a tenant in context")

// TenantConstrained reports whether any condition already references the
// tenant column. Explicit constraints written by the caller take precedence
// over the ambient scope and are never overwritten.
func TenantConstrained(conds []string, column string) bool {
	needle := column
	for _, c := range conds {
		if strings.Contains(c, needle) {
			return true
		}
	}
	return false
}

// ScopeFilters appends a tenant constraint from the ambient context to the
// condition list, unless the caller already constrained the tenant column.
// Placeholder numbering continues from len(args).
//
// Every read path of a scoped repository goes through here, including
// lookups by primary key.
func ScopeFilters(ctx context.Context, column string, conds []string, args []any) ([]string, []any, error) {
	if TenantConstrained(conds, column) {
		return conds, args, nil
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, nil, ErrNoTenantScope
	}
	conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)+1))
	args = append(args, tenantID)
	return conds, args, nil
}

// ScopeInsert stamps the ambient tenant id onto an insert unless the caller
// already supplied one in fields.
func ScopeInsert(ctx context.Context, fields []string, values []any) ([]string, []any, error) {
	for _, f := range fields {
		if f == TenantColumn {
			return fields, values, nil
		}
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, nil, ErrNoTenantScope
	}
	fields = append(fields, TenantColumn)
	values = append(values, tenantID)
	return fields, values, nil
}
