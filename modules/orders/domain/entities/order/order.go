package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew        Status = "new"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions holds the allowed forward moves. Cancellation is handled
// separately: an order can be cancelled at any point before it ships.
var transitions = map[Status][]Status{
	StatusNew:        {StatusProcessing},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusDelivered},
}

type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move order from %s to %s", e.From, e.To)
}

// Item is a line item frozen at order time. Product name and price are
// snapshots: later catalog edits must not change past orders.
type Item struct {
	ProductID  uuid.UUID
	Name       string
	PriceMinor int64
	Quantity   int
}

func (i Item) TotalMinor() int64 {
	return i.PriceMinor * int64(i.Quantity)
}

type Order struct {
	id            uuid.UUID
	tenantID      uuid.UUID
	number        int64
	status        Status
	customerName  string
	customerPhone string
	customerEmail string
	comment       string
	items         []Item
	currency      string
	createdAt     time.Time
	updatedAt     time.Time
}

type Option func(*Order)

func WithID(id uuid.UUID) Option {
	return func(o *Order) {
		o.id = id
	}
}

func WithTenantID(tenantID uuid.UUID) Option {
	return func(o *Order) {
		o.tenantID = tenantID
	}
}

func WithNumber(number int64) Option {
	return func(o *Order) {
		o.number = number
	}
}

func WithStatus(status Status) Option {
	return func(o *Order) {
		o.status = status
	}
}

func WithCustomerEmail(email string) Option {
	return func(o *Order) {
		o.customerEmail = email
	}
}

func WithComment(comment string) Option {
	return func(o *Order) {
		o.comment = comment
	}
}

func WithItems(items []Item) Option {
	return func(o *Order) {
		o.items = items
	}
}

func WithCurrency(currency string) Option {
	return func(o *Order) {
		o.currency = currency
	}
}

func WithCreatedAt(ts time.Time) Option {
	return func(o *Order) {
		o.createdAt = ts
	}
}

func WithUpdatedAt(ts time.Time) Option {
	return func(o *Order) {
		o.updatedAt = ts
	}
}

func New(customerName, customerPhone string, opts ...Option) *Order {
	o := &Order{
		id:            uuid.New(),
		status:        StatusNew,
		customerName:  customerName,
		customerPhone: customerPhone,
		currency:      "UAH",
		createdAt:     time.Now(),
		updatedAt:     time.Now(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Order) ID() uuid.UUID {
	return o.id
}

func (o *Order) TenantID() uuid.UUID {
	return o.tenantID
}

func (o *Order) Number() int64 {
	return o.number
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

func (o *Order) Comment() string {
	return o.comment
}

func (o *Order) Items() []Item {
	return o.items
}

func (o *Order) Currency() string {
	return o.currency
}

func (o *Order) TotalMinor() int64 {
	var total int64
	for _, item := range o.items {
		total += item.TotalMinor()
	}
	return total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanTransition reports whether moving to the target status is allowed
// from the current one.
func (o *Order) CanTransition(to Status) bool {
	if to == StatusCancelled {
		return o.status == StatusNew || o.status == StatusProcessing
	}
	for _, next := range transitions[o.status] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the order to the target status, rejecting moves the
// status machine does not allow.
func (o *Order) Transition(to Status) error {
	if !o.CanTransition(to) {
		return &InvalidTransitionError{From: o.status, To: to}
	}
	o.status = to
	o.updatedAt = time.Now()
	return nil
}

func (o *Order) Cancel() error {
	return o.Transition(StatusCancelled)
}
