package chat

import (
	"time"

	"github.com/google/uuid"
)

type ThreadStatus string

const (
	ThreadActive ThreadStatus = "active"
	// ThreadMissed marks a thread the shop did not answer before the
	// client went quiet. Set by the background sweeper.
	ThreadMissed ThreadStatus = "missed"
	ThreadClosed ThreadStatus = "closed"
)

type Thread struct {
	id           uuid.UUID
	tenantID     uuid.UUID
	clientName   string
	clientPhone  string
	status       ThreadStatus
	lastClientAt time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

type ThreadOption func(*Thread)

func WithThreadID(id uuid.UUID) ThreadOption {
	return func(t *Thread) {
		t.id = id
	}
}

func WithThreadTenantID(tenantID uuid.UUID) ThreadOption {
	return func(t *Thread) {
		t.tenantID = tenantID
	}
}

func WithClientPhone(phone string) ThreadOption {
	return func(t *Thread) {
		t.clientPhone = phone
	}
}

func WithThreadStatus(status ThreadStatus) ThreadOption {
	return func(t *Thread) {
		t.status = status
	}
}

func WithLastClientAt(ts time.Time) ThreadOption {
	return func(t *Thread) {
		t.lastClientAt = ts
	}
}

func WithThreadCreatedAt(ts time.Time) ThreadOption {
	return func(t *Thread) {
		t.createdAt = ts
	}
}

func WithThreadUpdatedAt(ts time.Time) ThreadOption {
	return func(t *Thread) {
		t.updatedAt = ts
	}
}

func NewThread(clientName string, opts ...ThreadOption) *Thread {
	now := time.Now()
	t := &Thread{
		id:           uuid.New(),
		clientName:   clientName,
		status:       ThreadActive,
		lastClientAt: now,
		createdAt:    now,
		updatedAt:    now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Thread) ID() uuid.UUID {
	return t.id
}

func (t *Thread) TenantID() uuid.UUID {
	return t.tenantID
}

func (t *Thread) ClientName() string {
	return t.clientName
}

func (t *Thread) ClientPhone() string {
	return t.clientPhone
}

func (t *Thread) Status() ThreadStatus {
	return t.status
}

func (t *Thread) LastClientAt() time.Time {
	return t.lastClientAt
}

func (t *Thread) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Thread) UpdatedAt() time.Time {
	return t.updatedAt
}

// TouchClient records client activity, reviving a missed thread.
func (t *Thread) TouchClient(ts time.Time) {
	t.lastClientAt = ts
	if t.status == ThreadMissed {
		t.status = ThreadActive
	}
	t.updatedAt = time.Now()
}

func (t *Thread) MarkMissed() {
	t.status = ThreadMissed
	t.updatedAt = time.Now()
}

func (t *Thread) Close() {
	t.status = ThreadClosed
	t.updatedAt = time.Now()
}
