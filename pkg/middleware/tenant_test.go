package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/core/domain/entities/tenant"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/core/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/eventbus"
	"github.com/storo-shop/backend/pkg/httpapi"
)

// memoryTenantDirectory backs the resolver chain without a database.
type memoryTenantDirectory struct {
	tenants []*tenant.Tenant
}

func (d *memoryTenantDirectory) GetByID(_ context.Context, id uuid.UUID) (*tenant.Tenant, error) {
	for _, t := range d.tenants {
		if t.ID() == id {
			return t, nil
		}
	}
	return nil, persistence.ErrTenantNotFound
}

func (d *memoryTenantDirectory) GetByCustomDomain(_ context.Context, domain string) (*tenant.Tenant, error) {
	for _, t := range d.tenants {
		if t.CustomDomain() != "" && t.CustomDomain() == domain {
			return t, nil
		}
	}
	return nil, persistence.ErrTenantNotFound
}

func (d *memoryTenantDirectory) GetBySubdomain(_ context.Context, label string) (*tenant.Tenant, error) {
	for _, t := range d.tenants {
		if t.Subdomain() == label {
			return t, nil
		}
	}
	return nil, persistence.ErrTenantNotFound
}

func (d *memoryTenantDirectory) Create(_ context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	d.tenants = append(d.tenants, t)
	return t, nil
}

func (d *memoryTenantDirectory) Update(_ context.Context, t *tenant.Tenant) (*tenant.Tenant, error) {
	return t, nil
}

func (d *memoryTenantDirectory) List(_ context.Context) ([]*tenant.Tenant, error) {
	return d.tenants, nil
}

func newTenantTestApp(tenants ...*tenant.Tenant) application.Application {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	app.RegisterServices(services.NewTenantService(&memoryTenantDirectory{tenants: tenants}, app.EventPublisher()))
	return app
}

// serveResolved runs one request through WithTenant and reports the tenant
// the inner handler observed, if any.
func serveResolved(t *testing.T, app application.Application, r *http.Request) (*httptest.ResponseRecorder, *composables.Tenant) {
	t.Helper()

	var resolved *composables.Tenant
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tn, err := composables.UseTenant(r.Context()); err == nil {
			resolved = tn
		}
		w.WriteHeader(http.StatusOK)
	})

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	r = r.WithContext(composables.WithLogger(r.Context(), logrus.NewEntry(logger)))

	rec := httptest.NewRecorder()
	WithTenant(app)(inner).ServeHTTP(rec, r)
	return rec, resolved
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope httpapi.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Code
}

func TestWithTenant_HeaderWinsOverHostname(t *testing.T) {
	headerTenant := tenant.New("Acme", tenant.WithSubdomain("acme"))
	hostTenant := tenant.New("Globex", tenant.WithSubdomain("globex"))
	app := newTenantTestApp(headerTenant, hostTenant)

	r := httptest.NewRequest(http.MethodGet, "http://globex.storo-shop.com/api/products", nil)
	r.Header.Set("X-Tenant-Id", headerTenant.ID().String())

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, headerTenant.ID(), resolved.ID)
}

func TestWithTenant_MalformedHeaderFallsThroughToHostname(t *testing.T) {
	hostTenant := tenant.New("Globex", tenant.WithSubdomain("globex"))
	app := newTenantTestApp(hostTenant)

	r := httptest.NewRequest(http.MethodGet, "http://globex.storo-shop.com/api/products", nil)
	r.Header.Set("X-Tenant-Id", "definitely-not-a-uuid")

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, hostTenant.ID(), resolved.ID)
}

func TestWithTenant_UnknownHeaderIDFallsThroughToHostname(t *testing.T) {
	hostTenant := tenant.New("Globex", tenant.WithSubdomain("globex"))
	app := newTenantTestApp(hostTenant)

	r := httptest.NewRequest(http.MethodGet, "http://globex.storo-shop.com/api/products", nil)
	r.Header.Set("Tenant-Id", uuid.NewString())

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, hostTenant.ID(), resolved.ID)
}

func TestWithTenant_QueryParam(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"))
	app := newTenantTestApp(tn)

	r := httptest.NewRequest(http.MethodGet, "http://localhost/api/products?tenantId="+tn.ID().String(), nil)

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_Cookie(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"))
	app := newTenantTestApp(tn)

	r := httptest.NewRequest(http.MethodGet, "http://localhost/api/products", nil)
	r.AddCookie(&http.Cookie{Name: "tid", Value: tn.ID().String()})

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_BearerClaim(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"))
	app := newTenantTestApp(tn)

	// The resolver reads the claim without verifying, so any signing key
	// works here.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "visitor-1",
		"tenantId": tn.ID().String(),
	}).SignedString([]byte("not-the-real-key"))
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "http://localhost/api/products", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_CustomDomain(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"), tenant.WithCustomDomain("shop.acme-coffee.com"))
	app := newTenantTestApp(tn)

	r := httptest.NewRequest(http.MethodGet, "https://shop.acme-coffee.com/api/products", nil)

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_WwwPrefixStripped(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"))
	app := newTenantTestApp(tn)

	r := httptest.NewRequest(http.MethodGet, "http://www.acme.storo-shop.com/api/products", nil)

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_OriginHeaderWinsOverHost(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"))
	app := newTenantTestApp(tn)

	// API served behind one host, storefront calling from its subdomain.
	r := httptest.NewRequest(http.MethodGet, "http://api.internal:8080/api/products", nil)
	r.Header.Set("Origin", "https://acme.storo-shop.com")

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
}

func TestWithTenant_BareBaseDomainRejected(t *testing.T) {
	app := newTenantTestApp(tenant.New("Acme", tenant.WithSubdomain("acme")))

	for _, host := range []string{"storo-shop.com", "www.storo-shop.com"} {
		r := httptest.NewRequest(http.MethodGet, "http://"+host+"/api/products", nil)
		rec, resolved := serveResolved(t, app, r)
		assert.Equal(t, http.StatusForbidden, rec.Code, host)
		assert.Nil(t, resolved, host)
		assert.Equal(t, "tenant_not_resolved", decodeErrorCode(t, rec), host)
	}
}

func TestWithTenant_NoSignalRejected(t *testing.T) {
	app := newTenantTestApp()

	r := httptest.NewRequest(http.MethodGet, "http://unknown-host.example/api/products", nil)

	rec, resolved := serveResolved(t, app, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, resolved)
	assert.Equal(t, "tenant_not_resolved", decodeErrorCode(t, rec))
}

func TestWithTenant_BlockedTenantStillResolves(t *testing.T) {
	tn := tenant.New("Acme", tenant.WithSubdomain("acme"), tenant.WithBlocked(true))
	app := newTenantTestApp(tn)

	r := httptest.NewRequest(http.MethodGet, "http://acme.storo-shop.com/api/products", nil)

	rec, resolved := serveResolved(t, app, r)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, tn.ID(), resolved.ID)
	assert.True(t, resolved.Blocked)
}

func TestWithTenant_ExemptPaths(t *testing.T) {
	app := newTenantTestApp()

	for _, path := range []string{"/", "/health", "/debug/prometheus", "/superadmin/tenants"} {
		r := httptest.NewRequest(http.MethodGet, "http://unknown-host.example"+path, nil)
		rec, resolved := serveResolved(t, app, r)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Nil(t, resolved, path)
	}
}

func TestNormalizeHost(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
	}{
		{"acme.storo-shop.com", "acme.storo-shop.com"},
		{"ACME.Storo-Shop.COM", "acme.storo-shop.com"},
		{"acme.storo-shop.com:8080", "acme.storo-shop.com"},
		{"https://acme.storo-shop.com", "acme.storo-shop.com"},
		{"https://acme.storo-shop.com:443/checkout", "acme.storo-shop.com"},
		{"www.acme.storo-shop.com", "acme.storo-shop.com"},
		{"https://www.acme.storo-shop.com", "acme.storo-shop.com"},
		{"  acme.storo-shop.com  ", "acme.storo-shop.com"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, normalizeHost(tc.raw), tc.raw)
	}
}

func TestSubdomainLabel(t *testing.T) {
	cases := []struct {
		host     string
		expected string
	}{
		{"acme.storo-shop.com", "acme"},
		{"storo-shop.com", ""},
		{"www.storo-shop.com", ""},
		{"shop.acme-coffee.com", ""},
		{"acme.other-platform.com", ""},
		{"deep.acme.storo-shop.com", "deep.acme"},
		{".storo-shop.com", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, subdomainLabel(tc.host, "storo-shop.com"), tc.host)
	}
}

func TestTenantIDFromUnverifiedToken(t *testing.T) {
	id := uuid.NewString()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"tid": id}).
		SignedString([]byte("whatever"))
	require.NoError(t, err)

	assert.Equal(t, id, tenantIDFromUnverifiedToken("Bearer "+signed))
	assert.Empty(t, tenantIDFromUnverifiedToken(signed), "missing Bearer prefix")
	assert.Empty(t, tenantIDFromUnverifiedToken("Bearer not.a.jwt"))
	assert.Empty(t, tenantIDFromUnverifiedToken(""))

	noClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).
		SignedString([]byte("whatever"))
	require.NoError(t, err)
	assert.Empty(t, tenantIDFromUnverifiedToken("Bearer "+noClaim))
}
