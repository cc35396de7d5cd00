package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/core/domain/entities/user"
	"github.com/storo-shop/backend/modules/core/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
)

const (
	userFindQuery = `
		SELECT u.id, u.tenant_id, u.email, u.password_hash, u.first_name, u.last_name, u.role, u.last_login_at, u.created_at, u.updated_at
		FROM users u`
	userCountQuery = `SELECT COUNT(*) FROM users u`
)

type PgUserRepository struct{}

func NewUserRepository() user.Repository {
	return &PgUserRepository{}
}

func (g *PgUserRepository) buildFilters(ctx context.Context, params *user.FindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.Role != "" {
		where = append(where, fmt.Sprintf("u.role = $%d", len(args)+1))
		args = append(args, string(params.Role))
	}

	if params.Search != "" {
		index := len(args) + 1
		where = append(
			where,
			fmt.Sprintf(
				"(u.first_name ILIKE $%d OR u.last_name ILIKE $%d OR u.email ILIKE $%d)",
				index, index, index,
			),
		)
		args = append(args, "%"+params.Search+"%")
	}

	return repo.ScopeFilters(ctx, "u.tenant_id", where, args)
}

func (g *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	where, args, err := repo.ScopeFilters(ctx, "u.tenant_id", []string{"u.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	users, err := g.queryUsers(ctx, repo.Join(userFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

func (g *PgUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	where, args, err := repo.ScopeFilters(ctx, "u.tenant_id", []string{"u.email = $1"}, []interface{}{email})
	if err != nil {
		return nil, err
	}
	users, err := g.queryUsers(ctx, repo.Join(userFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users[0], nil
}

func (g *PgUserRepository) GetPaginated(ctx context.Context, params *user.FindParams) ([]*user.User, error) {
	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		userFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY u.created_at DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	users, err := g.queryUsers(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated users")
	}
	return users, nil
}

func (g *PgUserRepository) Count(ctx context.Context, params *user.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(userCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}
	return count, nil
}

func (g *PgUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"id", "email", "password_hash", "first_name", "last_name", "role", "created_at", "updated_at"}
	values := []interface{}{
		u.ID().String(),
		u.Email(),
		mapping.ValueToSQLNullString(u.PasswordHash()),
		mapping.ValueToSQLNullString(u.FirstName()),
		mapping.ValueToSQLNullString(u.LastName()),
		string(u.Role()),
		u.CreatedAt(),
		u.UpdatedAt(),
	}
	if u.TenantID() != uuid.Nil {
		fields = append(fields, "tenant_id")
		values = append(values, u.TenantID())
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("users", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert user")
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetByID(ctx, id)
}

func (g *PgUserRepository) Update(ctx context.Context, u *user.User) (*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	fields := []string{"email", "password_hash", "first_name", "last_name", "role", "last_login_at", "updated_at"}
	values := []interface{}{
		u.Email(),
		mapping.ValueToSQLNullString(u.PasswordHash()),
		mapping.ValueToSQLNullString(u.FirstName()),
		mapping.ValueToSQLNullString(u.LastName()),
		string(u.Role()),
		mapping.PointerToSQLNullTime(u.LastLoginAt()),
		u.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, u.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("users", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}
	return g.GetByID(ctx, u.ID())
}

func (g *PgUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	where, args, err := repo.ScopeFilters(ctx, "tenant_id", []string{"id = $1"}, []interface{}{id.String()})
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, repo.Join("DELETE FROM users", repo.JoinWhere(where...)), args...)
	return errors.Wrap(err, "failed to delete user")
}

func (g *PgUserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]*user.User, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID,
			&u.TenantID,
			&u.Email,
			&u.PasswordHash,
			&u.FirstName,
			&u.LastName,
			&u.Role,
			&u.LastLoginAt,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan user row")
		}
		entity, err := toDomainUser(&u)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map user row")
		}
		users = append(users, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}

	return users, nil
}
