package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
)

var Validate = validator.New()

type CreateThreadRequest struct {
	ClientName  string `json:"clientName" validate:"required,max=255"`
	ClientPhone string `json:"clientPhone" validate:"max=32"`
	Body        string `json:"body" validate:"required"`
}

type SendMessageRequest struct {
	Sender string `json:"sender" validate:"required,oneof=client operator"`
	Body   string `json:"body" validate:"required"`
}

type TouchTypingRequest struct {
	Participant string `json:"participant" validate:"required,oneof=client operator"`
}

type MarkReadRequest struct {
	Sender string `json:"sender" validate:"required,oneof=client operator"`
}

type ThreadResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"clientName"`
	ClientPhone  string    `json:"clientPhone,omitempty"`
	Status       string    `json:"status"`
	LastClientAt time.Time `json:"lastClientAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewThreadResponse(t *chat.Thread) *ThreadResponse {
	return &ThreadResponse{
		ID:           t.ID(),
		ClientName:   t.ClientName(),
		ClientPhone:  t.ClientPhone(),
		Status:       string(t.Status()),
		LastClientAt: t.LastClientAt(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func NewThreadListResponse(threads []*chat.Thread) []*ThreadResponse {
	out := make([]*ThreadResponse, 0, len(threads))
	for _, t := range threads {
		out = append(out, NewThreadResponse(t))
	}
	return out
}

type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"threadId"`
	Sender    string    `json:"sender"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewMessageResponse(m *chat.Message) *MessageResponse {
	return &MessageResponse{
		ID:        m.ID(),
		ThreadID:  m.ThreadID(),
		Sender:    string(m.Sender()),
		Body:      m.Body(),
		Read:      m.Read(),
		CreatedAt: m.CreatedAt(),
	}
}

func NewMessageListResponse(messages []*chat.Message) []*MessageResponse {
	out := make([]*MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, NewMessageResponse(m))
	}
	return out
}

type TypingResponse struct {
	Typing []string `json:"typing"`
}
