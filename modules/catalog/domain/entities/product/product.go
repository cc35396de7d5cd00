package product

import (
	"time"

	"github.com/google/uuid"
)

// Product is a storefront item. Price is kept in minor currency units
// (kopecks, cents) to avoid float arithmetic. Slug and SKU are unique
// within a tenant, not globally.
type Product struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	categoryID  *uuid.UUID
	name        string
	slug        string
	sku         string
	description string
	priceMinor  int64
	currency    string
	stock       int
	images      []string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Product)

func WithID(id uuid.UUID) Option {
	return func(p *Product) {
		p.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(p *Product) {
		p.tenantID = tenantID
	}
}

func WithCategoryID(categoryID *uuid.UUID) Option {
	return func(p *Product) {
		p.categoryID = categoryID
	}
}

func WithSKU(sku string) Option {
	return func(p *Product) {
		p.sku = sku
	}
}

func WithDescription(description string) Option {
	return func(p *Product) {
		p.description = description
	}
}

func WithStock(stock int) Option {
	return func(p *Product) {
		p.stock = stock
	}
}

func WithImages(images []string) Option {
	return func(p *Product) {
		p.images = images
	}
}

func WithActive(active bool) Option {
	return func(p *Product) {
		p.active = active
	}
}

func WithCreatedAt(ts time.Time) Option {
	return func(p *Product) {
		p.createdAt = ts
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(p *Product) {
		p.updatedAt = ts
	}
}

func New(name, slug string, priceMinor int64, currency string, opts ...Option) *Product {
	p := &Product{
		id:         uuid.New(),
		name:       name,
		slug:       slug,
		priceMinor: priceMinor,
		currency:   currency,
		active:     true,
		createdAt:  time.Now(),
		updatedAt:  time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) TenantID() uuid.UUID {
	return p.tenantID
}

func (p *Product) CategoryID() *uuid.UUID {
	return p.categoryID
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Slug() string {
	return p.slug
}

func (p *Product) SKU() string {
	return p.sku
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) PriceMinor() int64 {
	return p.priceMinor
}

func (p *Product) Currency() string {
	return p.currency
}

func (p *Product) Stock() int {
	return p.stock
}

func (p *Product) Images() []string {
	return p.images
}

func (p *Product) Active() bool {
	return p.active
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Product) Rename(name string) {
	p.name = name
	p.updatedAt = time.Now()
}

func (p *Product) SetSlug(slug string) {
	p.slug = slug
	p.updatedAt = time.Now()
}

func (p *Product) SetSKU(sku string) {
	p.sku = sku
	p.updatedAt = time.Now()
}

func (p *Product) SetDescription(description string) {
	p.description = description
	p.updatedAt = time.Now()
}

func (p *Product) SetPrice(priceMinor int64, currency string) {
	p.priceMinor = priceMinor
	p.currency = currency
	p.updatedAt = time.Now()
}

func (p *Product) SetStock(stock int) {
	p.stock = stock
	p.updatedAt = time.Now()
}

func (p *Product) SetImages(images []string) {
	p.images = images
	p.updatedAt = time.Now()
}

func (p *Product) SetCategoryID(categoryID *uuid.UUID) {
	p.categoryID = categoryID
	p.updatedAt = time.Now()
}

func (p *Product) Activate() {
	p.active = true
	p.updatedAt = time.Now()
}

func (p *Product) Deactivate() {
	p.active = false
	p.updatedAt = time.Now()
}
