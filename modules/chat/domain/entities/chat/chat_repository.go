package chat

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ThreadFindParams struct {
	Limit  int
	Offset int
	Status ThreadStatus
}

type Repository interface {
	GetThreadByID(ctx context.Context, id uuid.UUID) (*Thread, error)
	GetThreadsPaginated(ctx context.Context, params *ThreadFindParams) ([]*Thread, error)
	CountThreads(ctx context.Context, params *ThreadFindParams) (int64, error)
	CreateThread(ctx context.Context, t *Thread) (*Thread, error)
	UpdateThread(ctx context.Context, t *Thread) (*Thread, error)
	// MarkStaleMissed flips active threads with no client activity since
	// the cutoff to missed, returning how many changed.
	MarkStaleMissed(ctx context.Context, cutoff time.Time) (int64, error)

	GetMessages(ctx context.Context, threadID uuid.UUID) ([]*Message, error)
	CreateMessage(ctx context.Context, m *Message) (*Message, error)
	MarkRead(ctx context.Context, threadID uuid.UUID, sender Sender) error
}
