package blogpost

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	id          uuid.UUID
	tenantID    uuid.UUID
	title       string
	slug        string
	body        string
	coverURL    string
	published   bool
	publishedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

type Option func(*Post)

func WithID(id uuid.UUID) Option {
	return func(p *Post) {
		p.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(p *Post) {
		p.tenantID = tenantID
	}
}

func WithCoverURL(coverURL string) Option {
	return func(p *Post) {
		p.coverURL = coverURL
	}
}

func WithPublished(published bool, at *time.Time) Option {
	return func(p *Post) {
		p.published = published
		p.publishedAt = at
	}
}

func WithCreatedAt(ts time.Time) Option {
	return func(p *Post) {
		p.createdAt = ts
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(p *Post) {
		p.updatedAt = ts
	}
}

func New(title, slug, body string, opts ...Option) *Post {
	p := &Post{
		id:        uuid.New(),
		title:     title,
		slug:      slug,
		body:      body,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Post) ID() uuid.UUID {
	return p.id
}

func (p *Post) TenantID() uuid.UUID {
	return p.tenantID
}

func (p *Post) Title() string {
	return p.title
}

func (p *Post) Slug() string {
	return p.slug
}

func (p *Post) Body() string {
	return p.body
}

func (p *Post) CoverURL() string {
	return p.coverURL
}

func (p *Post) Published() bool {
	return p.published
}

func (p *Post) PublishedAt() *time.Time {
	return p.publishedAt
}

func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Post) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Post) SetTitle(title string) {
	p.title = title
	p.updatedAt = time.Now()
}

func (p *Post) SetSlug(slug string) {
	p.slug = slug
	p.updatedAt = time.Now()
}

func (p *Post) SetBody(body string) {
	p.body = body
	p.updatedAt = time.Now()
}

func (p *Post) SetCoverURL(coverURL string) {
	p.coverURL = coverURL
	p.updatedAt = time.Now()
}

func (p *Post) Publish() {
	if p.published {
		return
	}
	now := time.Now()
	p.published = true
	p.publishedAt = &now
	p.updatedAt = now
}

func (p *Post) Unpublish() {
	p.published = false
	p.publishedAt = nil
	p.updatedAt = time.Now()
}
