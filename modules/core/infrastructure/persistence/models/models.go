package models

import (
	"database/sql"
	"time"
)

type Tenant struct {
	ID           string
	Name         string
	Subdomain    sql.NullString
	CustomDomain sql.NullString
	Plan         string
	TrialEndsAt  sql.NullTime
	Blocked      bool
	ContactEmail sql.NullString
	ContactPhone sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type User struct {
	ID           string
	TenantID     string
	Email        string
	PasswordHash sql.NullString
	FirstName    sql.NullString
	LastName     sql.NullString
	Role         string
	LastLoginAt  sql.NullTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
