package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/presence"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/eventbus"
)

type ChatService struct {
	repo      chat.Repository
	presence  presence.Store
	publisher eventbus.EventBus
}

func NewChatService(repo chat.Repository, store presence.Store, publisher eventbus.EventBus) *ChatService {
	return &ChatService{
		repo:      repo,
		presence:  store,
		publisher: publisher,
	}
}

func (s *ChatService) GetThreadByID(ctx context.Context, id uuid.UUID) (*chat.Thread, error) {
	return s.repo.GetThreadByID(ctx, id)
}

func (s *ChatService) GetThreadsPaginated(ctx context.Context, params *chat.ThreadFindParams) ([]*chat.Thread, error) {
	return s.repo.GetThreadsPaginated(ctx, params)
}

func (s *ChatService) CountThreads(ctx context.Context, params *chat.ThreadFindParams) (int64, error) {
	return s.repo.CountThreads(ctx, params)
}

func (s *ChatService) CreateThread(ctx context.Context, t *chat.Thread) (*chat.Thread, error) {
	created, err := s.repo.CreateThread(ctx, t)
	if err != nil {
		return nil, err
	}
	s.publisher.Publish(&chat.ThreadCreatedEvent{Result: *created})
	return created, nil
}

func (s *ChatService) CloseThread(ctx context.Context, id uuid.UUID) (*chat.Thread, error) {
	t, err := s.repo.GetThreadByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Close()
	return s.repo.UpdateThread(ctx, t)
}

func (s *ChatService) GetMessages(ctx context.Context, threadID uuid.UUID) ([]*chat.Message, error) {
	return s.repo.GetMessages(ctx, threadID)
}

// SendMessage stores the message and, for client messages, refreshes
// the thread's activity timestamp so the sweeper leaves it alone.
func (s *ChatService) SendMessage(ctx context.Context, threadID uuid.UUID, sender chat.Sender, body string) (*chat.Message, error) {
	t, err := s.repo.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}

	m, err := s.repo.CreateMessage(ctx, chat.NewMessage(threadID, sender, body))
	if err != nil {
		return nil, err
	}

	if sender == chat.SenderClient {
		t.TouchClient(m.CreatedAt())
		if t, err = s.repo.UpdateThread(ctx, t); err != nil {
			return nil, err
		}
	}

	s.publisher.Publish(&chat.MessageCreatedEvent{Thread: *t, Result: *m})
	return m, nil
}

func (s *ChatService) MarkRead(ctx context.Context, threadID uuid.UUID, sender chat.Sender) error {
	return s.repo.MarkRead(ctx, threadID, sender)
}

func (s *ChatService) Touch(ctx context.Context, threadID uuid.UUID, participant string) error {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return err
	}
	return s.presence.Touch(ctx, tenantID, threadID, participant)
}

func (s *ChatService) Typing(ctx context.Context, threadID uuid.UUID) ([]string, error) {
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}
	return s.presence.Typing(ctx, tenantID, threadID)
}

func (s *ChatService) MarkStaleMissed(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.MarkStaleMissed(ctx, cutoff)
}
