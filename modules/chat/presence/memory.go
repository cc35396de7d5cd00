package presence

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps typing signals in a mutex-guarded map. Expired
// entries are dropped lazily on read and swept on a timer so abandoned
// threads do not pin memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	ttl     time.Duration
	now     clock
}

type MemoryOption func(*MemoryStore)

func WithClock(now func() time.Time) MemoryOption {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]time.Time),
		ttl:     ttl,
		now:     realClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Touch(_ context.Context, tenantID, threadID uuid.UUID, participant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key(tenantID, threadID, participant)] = s.now().Add(s.ttl)
	return nil
}

func (s *MemoryStore) Typing(_ context.Context, tenantID, threadID uuid.UUID) ([]string, error) {
	prefix := threadPrefix(tenantID, threadID)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var typing []string
	for k, expiresAt := range s.entries {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if expiresAt.Before(now) {
			delete(s.entries, k)
			continue
		}
		typing = append(typing, strings.TrimPrefix(k, prefix))
	}
	return typing, nil
}

// StartSweep evicts expired entries until ctx is cancelled.
func (s *MemoryStore) StartSweep(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.evictExpired()
			}
		}
	}()
}

func (s *MemoryStore) evictExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, expiresAt := range s.entries {
		if expiresAt.Before(now) {
			delete(s.entries, k)
		}
	}
}
