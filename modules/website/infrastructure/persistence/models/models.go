package models

import (
	"database/sql"
	"time"
)

type SiteSettings struct {
	ID           string
	TenantID     string
	Title        string
	Description  sql.NullString
	LogoURL      sql.NullString
	PrimaryColor sql.NullString
	AccentColor  sql.NullString
	ContactPhone sql.NullString
	ContactEmail sql.NullString
	Address      sql.NullString
	Instagram    sql.NullString
	Facebook     sql.NullString
	Telegram     sql.NullString
	UpdatedAt    time.Time
}

type BlogPost struct {
	ID          string
	TenantID    string
	Title       string
	Slug        string
	Body        string
	CoverURL    sql.NullString
	Published   bool
	PublishedAt sql.NullTime
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
