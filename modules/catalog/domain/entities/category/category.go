package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for storefront navigation. Categories form a
// flat tree: a category may point at a parent but depth is not enforced.
type Category struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	parentID  *uuid.UUID
	name      string
	slug      string
	sortOrder int
	createdAt time.Time
	updatedAt time.Time
}

type Option func(*Category)

func WithID(id uuid.UUID) Option {
	return func(c *Category) {
		c.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(c *Category) {
		c.tenantID = tenantID
	}
}

func WithParentID(parentID *uuid.UUID) Option {
	return func(c *Category) {
		c.parentID = parentID
	}
}

func WithSortOrder(order int) Option {
	return func(c *Category) {
		c.sortOrder = order
	}
}

func WithCreatedAt(ts time.Time) Option {
	return func(c *Category) {
		c.createdAt = ts
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(c *Category) {
		c.updatedAt = ts
	}
}

func New(name, slug string, opts ...Option) *Category {
	c := &Category{
		id:        uuid.New(),
		name:      name,
		slug:      slug,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Category) ID() uuid.UUID {
	return c.id
}

func (c *Category) TenantID() uuid.UUID {
	return c.tenantID
}

func (c *Category) ParentID() *uuid.UUID {
	return c.parentID
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() string {
	return c.slug
}

func (c *Category) SortOrder() int {
	return c.sortOrder
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Rename(name string) {
	c.name = name
	c.updatedAt = time.Now()
}

func (c *Category) SetSlug(slug string) {
	c.slug = slug
	c.updatedAt = time.Now()
}

func (c *Category) SetParentID(parentID *uuid.UUID) {
	c.parentID = parentID
	c.updatedAt = time.Now()
}

func (c *Category) SetSortOrder(order int) {
	c.sortOrder = order
	c.updatedAt = time.Now()
}
