package tenant

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the billing tier of a storefront.
type Plan string

const (
	PlanFree  Plan = "free"
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPro:
		return true
	}
	return false
}

// Tenant is one independent storefront of the platform. It is reachable via
// a subdomain of the base domain, a custom domain, or its opaque id.
// Tenants are never hard-deleted; blocking is the terminal state.
type Tenant struct {
	id           uuid.UUID
	name         string
	subdomain    string
	customDomain string
	plan         Plan
	trialEndsAt  *time.Time
	blocked      bool
	contactEmail string
	contactPhone string
	createdAt    time.Time
	updatedAt    time.Time
}

type Option func(*Tenant)

func WithID(id uuid.UUID) Option {
	return func(t *Tenant) {
		t.id = id
	}
}

func WithSubdomain(subdomain string) Option {
	return func(t *Tenant) {
		t.subdomain = subdomain
	}
}

func WithCustomDomain(domain string) Option {
	return func(t *Tenant) {
		t.customDomain = domain
	}
}

func WithPlan(plan Plan) Option {
	return func(t *Tenant) {
		t.plan = plan
	}
}

func WithTrialEndsAt(ts *time.Time) Option {
	return func(t *Tenant) {
		t.trialEndsAt = ts
	}
}

func WithBlocked(blocked bool) Option {
	return func(t *Tenant) {
		t.blocked = blocked
	}
}

func WithContactEmail(email string) Option {
	return func(t *Tenant) {
		t.contactEmail = email
	}
}

func WithContactPhone(phone string) Option {
	return func(t *Tenant) {
		t.contactPhone = phone
	}
}

func WithCreatedAt(createdAt time.Time) Option {
	return func(t *Tenant) {
		t.createdAt = createdAt
	}
}

func WithUpdatedAt(updatedAt time.Time) Option {
	return func(t *Tenant) {
		t.updatedAt = updatedAt
	}
}

func New(name string, opts ...Option) *Tenant {
	t := &Tenant{
		id:        uuid.New(),
		name:      name,
		plan:      PlanFree,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Tenant) ID() uuid.UUID {
	return t.id
}

func (t *Tenant) Name() string {
	return t.name
}

func (t *Tenant) Subdomain() string {
	return t.subdomain
}

func (t *Tenant) CustomDomain() string {
	return t.customDomain
}

func (t *Tenant) Plan() Plan {
	return t.plan
}

func (t *Tenant) TrialEndsAt() *time.Time {
	return t.trialEndsAt
}

func (t *Tenant) Blocked() bool {
	return t.blocked
}

func (t *Tenant) ContactEmail() string {
	return t.contactEmail
}

func (t *Tenant) ContactPhone() string {
	return t.contactPhone
}

func (t *Tenant) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Tenant) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Tenant) SetPlan(plan Plan) {
	t.plan = plan
	t.updatedAt = time.Now()
}

func (t *Tenant) SetTrialEndsAt(ts *time.Time) {
	t.trialEndsAt = ts
	t.updatedAt = time.Now()
}

func (t *Tenant) Block() {
	t.blocked = true
	t.updatedAt = time.Now()
}

func (t *Tenant) Unblock() {
	t.blocked = false
	t.updatedAt = time.Now()
}

func (t *Tenant) SetCustomDomain(domain string) {
	t.customDomain = domain
	t.updatedAt = time.Now()
}

func (t *Tenant) SetContactEmail(email string) {
	t.contactEmail = email
	t.updatedAt = time.Now()
}

func (t *Tenant) SetContactPhone(phone string) {
	t.contactPhone = phone
	t.updatedAt = time.Now()
}
