package persistence_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/infrastructure/persistence"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/constants"
	"github.com/storo-shop/backend/pkg/repo"
)

// recordingTx captures the statement a repository issues so its tenant
// binding can be asserted without a database.
type recordingTx struct {
	query        string
	args         []interface{}
	rowsAffected int64
}

func (t *recordingTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (t *recordingTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return nil
}

func (t *recordingTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.query = sql
	t.args = args
	return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", t.rowsAffected)), nil
}

func scopedCtx(tx composables.Tx, tenantID uuid.UUID) context.Context {
	ctx := context.WithValue(context.Background(), constants.TxKey, tx)
	return composables.WithTenantID(ctx, tenantID)
}

func TestChatRepository_CreateMessage_GuardsThreadOwnership(t *testing.T) {
	rec := &recordingTx{rowsAffected: 1}
	tenantID := uuid.New()
	chatRepo := persistence.NewChatRepository()

	msg := chat.NewMessage(uuid.New(), chat.SenderClient, "hello")
	created, err := chatRepo.CreateMessage(scopedCtx(rec, tenantID), msg)
	require.NoError(t, err)
	assert.Equal(t, msg.ID(), created.ID())

	// The single insert statement must resolve the thread itself and bind
	// the ambient tenant; a bare INSERT would accept any thread id.
	assert.Contains(t, rec.query, "FROM chat_threads")
	assert.Contains(t, rec.query, "tenant_id = $7")
	assert.Contains(t, rec.args, tenantID.String())
}

func TestChatRepository_CreateMessage_ForeignThreadWritesNothing(t *testing.T) {
	// Zero rows selected means the thread does not belong to the ambient
	// tenant (or does not exist); either way the write must fail.
	rec := &recordingTx{rowsAffected: 0}
	chatRepo := persistence.NewChatRepository()

	msg := chat.NewMessage(uuid.New(), chat.SenderClient, "hello")
	_, err := chatRepo.CreateMessage(scopedCtx(rec, uuid.New()), msg)
	assert.ErrorIs(t, err, persistence.ErrThreadNotFound)
}

func TestChatRepository_CreateMessage_RequiresTenantScope(t *testing.T) {
	rec := &recordingTx{rowsAffected: 1}
	ctx := context.WithValue(context.Background(), constants.TxKey, composables.Tx(rec))
	chatRepo := persistence.NewChatRepository()

	_, err := chatRepo.CreateMessage(ctx, chat.NewMessage(uuid.New(), chat.SenderClient, "hello"))
	assert.ErrorIs(t, err, repo.ErrNoTenantScope)
	assert.Empty(t, rec.query, "no statement may run without a tenant in scope")
}

func TestChatRepository_MarkRead_ScopedToTenant(t *testing.T) {
	rec := &recordingTx{}
	tenantID := uuid.New()
	chatRepo := persistence.NewChatRepository()

	err := chatRepo.MarkRead(scopedCtx(rec, tenantID), uuid.New(), chat.SenderOperator)
	require.NoError(t, err)
	assert.Contains(t, rec.query, "tenant_id")
	assert.Contains(t, rec.args, tenantID)
}
