package models

import (
	"database/sql"
	"time"
)

type ChatThread struct {
	ID           string
	TenantID     string
	ClientName   string
	ClientPhone  sql.NullString
	Status       string
	LastClientAt time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ChatMessage struct {
	ID        string
	TenantID  string
	ThreadID  string
	Sender    string
	Body      string
	Read      bool
	CreatedAt time.Time
}
