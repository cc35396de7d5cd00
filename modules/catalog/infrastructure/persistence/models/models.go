package models

import (
	"database/sql"
	"time"
)

type Category struct {
	ID        string
	TenantID  string
	ParentID  sql.NullString
	Name      string
	Slug      string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID          string
	TenantID    string
	CategoryID  sql.NullString
	Name        string
	Slug        string
	SKU         sql.NullString
	Description sql.NullString
	PriceMinor  int64
	Currency    string
	Stock       int
	Images      []string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
