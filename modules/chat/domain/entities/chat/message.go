package chat

import (
	"time"

	"github.com/google/uuid"
)

type Sender string

const (
	SenderClient   Sender = "client"
	SenderOperator Sender = "operator"
)

type Message struct {
	id        uuid.UUID
	tenantID  uuid.UUID
	threadID  uuid.UUID
	sender    Sender
	body      string
	read      bool
	createdAt time.Time
}

type MessageOption func(*Message)

func WithMessageID(id uuid.UUID) MessageOption {
	return func(m *Message) {
		m.id = id
	}
}

func WithMessageTenantID(tenantID uuid.UUID) MessageOption {
	return func(m *Message) {
		m.tenantID = tenantID
	}
}

func WithRead(read bool) MessageOption {
	return func(m *Message) {
		m.read = read
	}
}

func WithMessageCreatedAt(ts time.Time) MessageOption {
	return func(m *Message) {
		m.createdAt = ts
	}
}

func NewMessage(threadID uuid.UUID, sender Sender, body string, opts ...MessageOption) *Message {
	m := &Message{
		id:        uuid.New(),
		threadID:  threadID,
		sender:    sender,
		body:      body,
		createdAt: time.Now(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Message) ID() uuid.UUID {
	return m.id
}

func (m *Message) TenantID() uuid.UUID {
	return m.tenantID
}

func (m *Message) ThreadID() uuid.UUID {
	return m.threadID
}

func (m *Message) Sender() Sender {
	return m.sender
}

func (m *Message) Body() string {
	return m.body
}

func (m *Message) Read() bool {
	return m.read
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}
