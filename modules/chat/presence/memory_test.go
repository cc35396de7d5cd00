package presence_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/chat/presence"
)

func TestMemoryStore_TypingExpires(t *testing.T) {
	now := time.Now()
	store := presence.NewMemoryStore(6*time.Second, presence.WithClock(func() time.Time {
		return now
	}))

	tenantID := uuid.New()
	threadID := uuid.New()
	ctx := context.Background()

	require.NoError(t, store.Touch(ctx, tenantID, threadID, "client"))
	require.NoError(t, store.Touch(ctx, tenantID, threadID, "operator"))

	typing, err := store.Typing(ctx, tenantID, threadID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"client", "operator"}, typing)

	now = now.Add(7 * time.Second)
	typing, err = store.Typing(ctx, tenantID, threadID)
	require.NoError(t, err)
	assert.Empty(t, typing)
}

func TestMemoryStore_TouchRefreshesTTL(t *testing.T) {
	now := time.Now()
	store := presence.NewMemoryStore(6*time.Second, presence.WithClock(func() time.Time {
		return now
	}))

	tenantID := uuid.New()
	threadID := uuid.New()
	ctx := context.Background()

	require.NoError(t, store.Touch(ctx, tenantID, threadID, "client"))

	now = now.Add(5 * time.Second)
	require.NoError(t, store.Touch(ctx, tenantID, threadID, "client"))

	now = now.Add(5 * time.Second)
	typing, err := store.Typing(ctx, tenantID, threadID)
	require.NoError(t, err)
	assert.Equal(t, []string{"client"}, typing, "refreshed signal must outlive the original window")
}

func TestMemoryStore_ThreadsAreIsolated(t *testing.T) {
	store := presence.NewMemoryStore(6 * time.Second)

	tenantID := uuid.New()
	threadA := uuid.New()
	threadB := uuid.New()
	ctx := context.Background()

	require.NoError(t, store.Touch(ctx, tenantID, threadA, "client"))

	typing, err := store.Typing(ctx, tenantID, threadB)
	require.NoError(t, err)
	assert.Empty(t, typing)
}
