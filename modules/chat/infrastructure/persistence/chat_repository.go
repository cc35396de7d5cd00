package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrThreadNotFound = fmt.Errorf("chat thread not found")
)

const (
	threadFindQuery = `
		SELECT t.id, t.tenant_id, t.client_name, t.client_phone, t.status, t.last_client_at, t.created_at, t.updated_at
		FROM chat_threads t`
	threadCountQuery = `SELECT COUNT(*) FROM chat_threads t`
	messageFindQuery = `
		SELECT m.id, m.tenant_id, m.thread_id, m.sender, m.body, m.read, m.created_at
		FROM chat_messages m`
	// The insert passes through the owning thread: a thread id outside the
	// ambient tenant selects no row, so the message is never written, and
	// the stamped tenant always matches the thread's.
	messageInsertQuery = `
		INSERT INTO chat_messages (id, thread_id, tenant_id, sender, body, read, created_at)
		SELECT $1, t.id, t.tenant_id, $3, $4, $5, $6
		FROM chat_threads t
		WHERE t.id = $2 AND t.tenant_id = $7`
)

type PgChatRepository struct{}

func NewChatRepository() chat.Repository {
	return &PgChatRepository{}
}

func (g *PgChatRepository) GetThreadByID(ctx context.Context, id uuid.UUID) (*chat.Thread, error) {
	where, args, err := repo.ScopeFilters(ctx, "t.tenant_id", []string{"t.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	threads, err := g.queryThreads(ctx, repo.Join(threadFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(threads) == 0 {
		return nil, ErrThreadNotFound
	}
	return threads[0], nil
}

func (g *PgChatRepository) buildThreadFilters(ctx context.Context, params *chat.ThreadFindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.Status != "" {
		where = append(where, fmt.Sprintf("t.status = $%d", len(args)+1))
		args = append(args, string(params.Status))
	}

	return repo.ScopeFilters(ctx, "t.tenant_id", where, args)
}

func (g *PgChatRepository) GetThreadsPaginated(ctx context.Context, params *chat.ThreadFindParams) ([]*chat.Thread, error) {
	where, args, err := g.buildThreadFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		threadFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY t.last_client_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	threads, err := g.queryThreads(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated chat threads")
	}
	return threads, nil
}

func (g *PgChatRepository) CountThreads(ctx context.Context, params *chat.ThreadFindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildThreadFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(threadCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count chat threads")
	}
	return count, nil
}

func (g *PgChatRepository) CreateThread(ctx context.Context, t *chat.Thread) (*chat.Thread, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "client_name", "client_phone", "status", "last_client_at", "created_at", "updated_at"}
	values := []interface{}{
		t.ID().String(),
		t.ClientName(),
		mapping.ValueToSQLNullString(t.ClientPhone()),
		string(t.Status()),
		t.LastClientAt(),
		t.CreatedAt(),
		t.UpdatedAt(),
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("chat_threads", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert chat thread")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetThreadByID(ctx, id)
}

func (g *PgChatRepository) UpdateThread(ctx context.Context, t *chat.Thread) (*chat.Thread, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"client_name", "client_phone", "status", "last_client_at", "updated_at"}
	values := []interface{}{
		t.ClientName(),
		mapping.ValueToSQLNullString(t.ClientPhone()),
		string(t.Status()),
		t.LastClientAt(),
		t.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, t.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("chat_threads", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update chat thread")
	}
	return g.GetThreadByID(ctx, t.ID())
}

func (g *PgChatRepository) MarkStaleMissed(ctx context.Context, cutoff time.Time) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	where, args, err := repo.ScopeFilters(
		ctx,
		"tenant_id",
		[]string{"status = $1", "last_client_at < $2"},
		[]interface{}{string(chat.ThreadActive), cutoff},
	)
	if err != nil {
		return 0, err
	}

	query := repo.Join(
		fmt.Sprintf("UPDATE chat_threads SET status = '%s', updated_at = now()", chat.ThreadMissed),
		repo.JoinWhere(where...),
	)
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark stale chat threads")
	}
	return tag.RowsAffected(), nil
}

func (g *PgChatRepository) GetMessages(ctx context.Context, threadID uuid.UUID) ([]*chat.Message, error) {
	where, args, err := repo.ScopeFilters(ctx, "m.tenant_id", []string{"m.thread_id = $1"}, []interface{}{threadID.String()})
	if err != nil {
		return nil, err
	}
	return g.queryMessages(
		ctx,
		repo.Join(messageFindQuery, repo.JoinWhere(where...), "ORDER BY m.created_at ASC"),
		args...,
	)
}

func (g *PgChatRepository) CreateMessage(ctx context.Context, m *chat.Message) (*chat.Message, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, repo.ErrNoTenantScope
	}

	tag, err := tx.Exec(ctx, messageInsertQuery,
		m.ID().String(),
		m.ThreadID().String(),
		string(m.Sender()),
		m.Body(),
		m.Read(),
		m.CreatedAt(),
		tenantID.String(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert chat message")
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrThreadNotFound
	}
	return m, nil
}

func (g *PgChatRepository) MarkRead(ctx context.Context, threadID uuid.UUID, sender chat.Sender) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	where, args, err := repo.ScopeFilters(
		ctx,
		"tenant_id",
		[]string{"thread_id = $1", "sender = $2", "NOT read"},
		[]interface{}{threadID.String(), string(sender)},
	)
	if err != nil {
		return err
	}

	query := repo.Join("UPDATE chat_messages SET read = true", repo.JoinWhere(where...))
	_, err = tx.Exec(ctx, query, args...)
	return errors.Wrap(err, "failed to mark chat messages read")
}

func (g *PgChatRepository) queryThreads(ctx context.Context, query string, args ...interface{}) ([]*chat.Thread, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var threads []*chat.Thread
	for rows.Next() {
		var t models.ChatThread
		if err := rows.Scan(
			&t.ID,
			&t.TenantID,
			&t.ClientName,
			&t.ClientPhone,
			&t.Status,
			&t.LastClientAt,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chat thread row")
		}
		entity, err := toDomainThread(&t)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map chat thread row")
		}
		threads = append(threads, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return threads, nil
}

func (g *PgChatRepository) queryMessages(ctx context.Context, query string, args ...interface{}) ([]*chat.Message, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var messages []*chat.Message
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.TenantID,
			&m.ThreadID,
			&m.Sender,
			&m.Body,
			&m.Read,
			&m.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan chat message row")
		}
		entity, err := toDomainMessage(&m)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map chat message row")
		}
		messages = append(messages, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return messages, nil
}
