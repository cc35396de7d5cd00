package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/services"
	"github.com/storo-shop/backend/pkg/itf"
)

func TestChatService_Conversation(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ChatService](env)

	thread, err := svc.CreateThread(env.Ctx, chat.NewThread("Olena"))
	require.NoError(t, err)
	assert.Equal(t, chat.ThreadActive, thread.Status())

	_, err = svc.SendMessage(env.Ctx, thread.ID(), chat.SenderClient, "Is the americano available?")
	require.NoError(t, err)
	_, err = svc.SendMessage(env.Ctx, thread.ID(), chat.SenderOperator, "Yes, it is.")
	require.NoError(t, err)

	messages, err := svc.GetMessages(env.Ctx, thread.ID())
	require.NoError(t, err)
	require.Len(t, messages, 2)

	require.NoError(t, svc.MarkRead(env.Ctx, thread.ID(), chat.SenderClient))
}

func TestChatService_ClientMessageRevivesMissedThread(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ChatService](env)

	thread, err := svc.CreateThread(env.Ctx, chat.NewThread("Olena"))
	require.NoError(t, err)

	marked, err := svc.MarkStaleMissed(env.Ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	missed, err := svc.GetThreadByID(env.Ctx, thread.ID())
	require.NoError(t, err)
	assert.Equal(t, chat.ThreadMissed, missed.Status())

	_, err = svc.SendMessage(env.Ctx, thread.ID(), chat.SenderClient, "Hello again")
	require.NoError(t, err)

	revived, err := svc.GetThreadByID(env.Ctx, thread.ID())
	require.NoError(t, err)
	assert.Equal(t, chat.ThreadActive, revived.Status())
}

func TestChatService_MarkStaleMissed_SkipsClosedThreads(t *testing.T) {
	env := itf.NewTestContext().Build(t)
	svc := itf.GetService[services.ChatService](env)

	thread, err := svc.CreateThread(env.Ctx, chat.NewThread("Olena"))
	require.NoError(t, err)
	_, err = svc.CloseThread(env.Ctx, thread.ID())
	require.NoError(t, err)

	marked, err := svc.MarkStaleMissed(env.Ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, marked)
}
