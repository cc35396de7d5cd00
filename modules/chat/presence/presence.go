// Package presence tracks who is typing in a chat thread. Entries live
// for a few seconds and expire on their own; nothing is persisted, a
// restart simply clears the board.
package presence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Store records short-lived typing signals per thread.
type Store interface {
	// Touch marks the participant as typing in the thread, refreshing
	// the expiry on repeat calls.
	Touch(ctx context.Context, tenantID, threadID uuid.UUID, participant string) error
	// Typing lists participants whose signal has not expired yet.
	Typing(ctx context.Context, tenantID, threadID uuid.UUID) ([]string, error)
}

func key(tenantID, threadID uuid.UUID, participant string) string {
	return fmt.Sprintf("chat:typing:%s:%s:%s", tenantID, threadID, participant)
}

func threadPrefix(tenantID, threadID uuid.UUID) string {
	return fmt.Sprintf("chat:typing:%s:%s:", tenantID, threadID)
}

// clock is swappable in tests.
type clock func() time.Time

var realClock clock = time.Now
