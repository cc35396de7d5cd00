package user

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleOperator Role = "operator"
	RoleCustomer Role = "customer"
)

// User is a tenant-scoped account: the shop owner, an operator answering
// chats, or a storefront customer. Email is unique within one tenant only.
type User struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	email        string
	passwordHash string
	firstName    string
	lastName     string
	role         Role
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

type Option func(*User)

func WithID(id uuid.UUID) Option {
	return func(u *User) {
		u.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(u *User) {
		u.tenantID = tenantID
	}
}

func WithPasswordHash(hash string) Option {
	return func(u *User) {
		u.passwordHash = hash
	}
}

func WithName(first, last string) Option {
	return func(u *User) {
		u.firstName = first
		u.lastName = last
	}
}

func WithRole(role Role) Option {
	return func(u *User) {
		u.role = role
	}
}

func WithLastLoginAt(ts *time.Time) Option {
	return func(u *User) {
		u.lastLoginAt = ts
	}
}

func WithCreatedAt(ts time.Time) Option {
	return func(u *User) {
		u.createdAt = ts
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(u *User) {
		u.updatedAt = ts
	}
}

func New(email string, opts ...Option) *User {
	u := &User{
		id:        uuid.New(),
		email:     email,
		role:      RoleCustomer,
		createdAt: time.Now(),
		updatedAt: time.Now(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// SetPassword replaces the stored hash with a bcrypt hash of password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.passwordHash = string(hash)
	u.updatedAt = time.Now()
	return nil
}

// CheckPassword reports whether password matches the stored hash. A user
// without a hash never matches.
func (u *User) CheckPassword(password string) bool {
	if u.passwordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) ID() uuid.UUID {
	return u.id
}

func (u *User) TenantID() uuid.UUID {
	return u.tenantID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) LastLoginAt() *time.Time {
	return u.lastLoginAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
