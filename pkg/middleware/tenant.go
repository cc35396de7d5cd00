package middleware

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

// Header and query synonyms accepted for an explicit tenant id.
var (
	tenantIDHeaders     = []string{"X-Tenant-Id", "Tenant-Id"}
	tenantIDQueryParams = []string{"tenantId", "tenant_id"}
	tenantIDClaims      = []string{"tenantId", "tid"}
)

// Paths that answer without a tenant.
var tenantExemptPaths = map[string]struct{}{
	"/":                 {},
	"/health":           {},
	"/debug/prometheus": {},
}

// The superadmin surface is cross-tenant by definition and names tenants
// explicitly in its payloads instead of relying on ambient scope.
const superadminPathPrefix = "/superadmin"

func tenantExempt(path string) bool {
	if _, ok := tenantExemptPaths[path]; ok {
		return true
	}
	return strings.HasPrefix(path, superadminPathPrefix)
}

// tenantResolver attempts one signal. A miss returns (nil, nil); only an
// infrastructure fault (directory unavailable) returns an error.
type tenantResolver func(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error)

// WithTenant attributes every request to exactly one tenant, or rejects it.
// Signals are tried in a fixed order with first-success semantics; a miss at
// one step never aborts the chain. Resolution is routing, not authorization:
// a blocked tenant still resolves.
func WithTenant(app application.Application) mux.MiddlewareFunc {
	conf := configuration.Use()
	resolvers := []tenantResolver{
		resolveFromHeader,
		resolveFromQuery,
		resolveFromCookie(conf.Tenancy.CookieName),
		resolveFromBearerToken,
		resolveFromHostname(conf.Tenancy.BaseDomain),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tenantExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			svc := app.Service(services.TenantService{}).(*services.TenantService)

			for _, resolve := range resolvers {
				t, err := resolve(ctx, r, svc)
				if err != nil {
					composables.UseLogger(ctx).WithError(err).Error("tenant directory lookup failed")
					_ = httpapi.WriteError(w, http.StatusInternalServerError, "tenant_lookup_failed", "tenant directory unavailable", nil)
					return
				}
				if t != nil {
					next.ServeHTTP(w, r.WithContext(composables.WithTenant(ctx, snapshot(t))))
					return
				}
			}

			// Misrouting here would be a silent cross-tenant leak, so log
			// every candidate signal before rejecting.
			composables.UseLogger(ctx).WithFields(map[string]interface{}{
				"path":             r.URL.Path,
				"header":           firstHeader(r, tenantIDHeaders),
				"query":            firstQuery(r, tenantIDQueryParams),
				"cookie":           cookieValue(r, conf.Tenancy.CookieName),
				"has_bearer":       r.Header.Get("Authorization") != "",
				"origin":           r.Header.Get("Origin"),
				"referer":          r.Header.Get("Referer"),
				"x_forwarded_host": r.Header.Get("X-Forwarded-Host"),
				"host":             r.Host,
			}).Warn("tenant not resolved")
			_ = httpapi.WriteError(w, http.StatusForbidden, "tenant_not_resolved", "request could not be attributed to a tenant", nil)
		})
	}
}

func snapshot(t *tenant.Tenant) *composables.Tenant {
	return &composables.Tenant{
		ID:           t.ID(),
		Name:         t.Name(),
		Subdomain:    t.Subdomain(),
		CustomDomain: t.CustomDomain(),
		Plan:         string(t.Plan()),
		Blocked:      t.Blocked(),
	}
}

func resolveFromHeader(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error) {
	return lookupByID(ctx, svc, firstHeader(r, tenantIDHeaders))
}

func resolveFromQuery(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error) {
	return lookupByID(ctx, svc, firstQuery(r, tenantIDQueryParams))
}

func resolveFromCookie(name string) tenantResolver {
	return func(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error) {
		return lookupByID(ctx, svc, cookieValue(r, name))
	}
}

func resolveFromBearerToken(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error) {
	return lookupByID(ctx, svc, tenantIDFromUnverifiedToken(r.Header.Get("Authorization")))
}

// tenantIDFromUnverifiedToken reads a tenant id claim WITHOUT verifying the
// token signature. The claim is only ever used to pick a storefront, never
// to authorize; callers that need an authenticated identity must verify the
// token themselves.
func tenantIDFromUnverifiedToken(authHeader string) string {
	raw, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return ""
	}
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	for _, name := range tenantIDClaims {
		if v, ok := claims[name].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func resolveFromHostname(baseDomain string) tenantResolver {
	return func(ctx context.Context, r *http.Request, svc *services.TenantService) (*tenant.Tenant, error) {
		candidates := []string{
			r.Header.Get("Origin"),
			r.Header.Get("Referer"),
			r.Header.Get("X-Forwarded-Host"),
			r.Host,
		}
		for _, raw := range candidates {
			host := normalizeHost(raw)
			if host == "" {
				continue
			}

			t, err := svc.GetByCustomDomain(ctx, host)
			if err == nil {
				return t, nil
			}
			if !isTenantMiss(err) {
				return nil, err
			}

			label := subdomainLabel(host, baseDomain)
			if label == "" {
				continue
			}
			t, err = svc.GetBySubdomain(ctx, label)
			if err == nil {
				return t, nil
			}
			if !isTenantMiss(err) {
				return nil, err
			}
		}
		return nil, nil
	}
}

// normalizeHost reduces an Origin/Referer URL or a Host header to a bare
// lowercase hostname: no scheme, no port, no leading "www.".
func normalizeHost(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return ""
		}
		raw = u.Host
	}
	if h, _, err := net.SplitHostPort(raw); err == nil {
		raw = h
	}
	return strings.TrimPrefix(raw, "www.")
}

// subdomainLabel returns the label under baseDomain, or "" when host is not
// a usable subdomain of it. The bare base domain and the "www" label never
// match.
func subdomainLabel(host, baseDomain string) string {
	if host == baseDomain {
		return ""
	}
	label, ok := strings.CutSuffix(host, "."+baseDomain)
	if !ok || label == "" || label == "www" {
		return ""
	}
	return label
}

func lookupByID(ctx context.Context, svc *services.TenantService, candidate string) (*tenant.Tenant, error) {
	if candidate == "" {
		return nil, nil
	}
	id, err := uuid.Parse(candidate)
	if err != nil {
		// A malformed id is a miss, not a failure.
		return nil, nil
	}
	t, err := svc.GetByID(ctx, id)
	if err != nil {
		if isTenantMiss(err) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func isTenantMiss(err error) bool {
	return errors.Is(err, persistence.ErrTenantNotFound)
}

func firstHeader(r *http.Request, names []string) string {
	for _, name := range names {
		if v := r.Header.Get(name); v != "" {
			return v
		}
	}
	return ""
}

func firstQuery(r *http.Request, names []string) string {
	q := r.URL.Query()
	for _, name := range names {
		if v := q.Get(name); v != "" {
			return v
		}
	}
	return ""
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
