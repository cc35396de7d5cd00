package persistence

import (
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/mapping"
)

func toDomainThread(t *models.ChatThread) (*chat.Thread, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(t.TenantID)
	if err != nil {
		return nil, err
	}

	return chat.NewThread(
		t.ClientName,
		chat.WithThreadID(id),
		chat.WithThreadTenantID(tenantID),
		chat.WithClientPhone(mapping.SQLNullStringToValue(t.ClientPhone)),
		chat.WithThreadStatus(chat.ThreadStatus(t.Status)),
		chat.WithLastClientAt(t.LastClientAt),
		chat.WithThreadCreatedAt(t.CreatedAt),
		chat.WithThreadUpdatedAt(t.UpdatedAt),
	), nil
}

func toDomainMessage(m *models.ChatMessage) (*chat.Message, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(m.TenantID)
	if err != nil {
		return nil, err
	}
	threadID, err := uuid.Parse(m.ThreadID)
	if err != nil {
		return nil, err
	}

	return chat.NewMessage(
		threadID,
		chat.Sender(m.Sender),
		m.Body,
		chat.WithMessageID(id),
		chat.WithMessageTenantID(tenantID),
		chat.WithRead(m.Read),
		chat.WithMessageCreatedAt(m.CreatedAt),
	), nil
}
