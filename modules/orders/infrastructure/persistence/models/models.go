package models

import (
	"database/sql"
	"time"
)

type Order struct {
	ID            string
	TenantID      string
	Number        int64
	Status        string
	CustomerName  string
	CustomerPhone string
	CustomerEmail sql.NullString
	Comment       sql.NullString
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	OrderID    string
	ProductID  string
	Name       string
	PriceMinor int64
	Quantity   int
}
