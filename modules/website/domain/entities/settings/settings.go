package settings

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the storefront's public face: one row per tenant holding
// branding, palette and contact links.
type Settings struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	title        string
	description  string
	logoURL      string
	primaryColor string
	accentColor  string
	contactPhone string
	contactEmail string
	address      string
	instagram    string
	facebook     string
	telegram     string
	updatedAt    time.Time
}

type Option func(*Settings)

func WithID(id uuid.UUID) Option {
	return func(s *Settings) {
		s.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(s *Settings) {
		s.tenantID = tenantID
	}
}

func WithDescription(description string) Option {
	return func(s *Settings) {
		s.description = description
	}
}

func WithLogoURL(logoURL string) Option {
	return func(s *Settings) {
		s.logoURL = logoURL
	}
}

func WithPalette(primary, accent string) Option {
	return func(s *Settings) {
		s.primaryColor = primary
		s.accentColor = accent
	}
}

func WithContacts(phone, email, address string) Option {
	return func(s *Settings) {
		s.contactPhone = phone
		s.contactEmail = email
		s.address = address
	}
}

func WithSocials(instagram, facebook, telegram string) Option {
	return func(s *Settings) {
		s.instagram = instagram
		s.facebook = facebook
		s.telegram = telegram
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(s *Settings) {
		s.updatedAt = ts
	}
}

func New(title string, opts ...Option) *Settings {
	s := &Settings{
		id:        uuid.New(),
		title:     title,
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Settings) ID() uuid.UUID {
	return s.id
}

func (s *Settings) TenantID() uuid.UUID {
	return s.tenantID
}

func (s *Settings) Title() string {
	return s.title
}

func (s *Settings) Description() string {
	return s.description
}

func (s *Settings) LogoURL() string {
	return s.logoURL
}

func (s *Settings) PrimaryColor() string {
	return s.primaryColor
}

func (s *Settings) AccentColor() string {
	return s.accentColor
}

func (s *Settings) ContactPhone() string {
	return s.contactPhone
}

func (s *Settings) ContactEmail() string {
	return s.contactEmail
}

func (s *Settings) Address() string {
	return s.address
}

func (s *Settings) Instagram() string {
	return s.instagram
}

func (s *Settings) Facebook() string {
	return s.facebook
}

func (s *Settings) Telegram() string {
	return s.telegram
}

func (s *Settings) UpdatedAt() time.Time {
	return s.updatedAt
}
