package persistence

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
	"github.com/storo-shop/backend/modules/orders/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/composables"
	"github.com/storo-shop/backend/pkg/mapping"
	"github.com/storo-shop/backend/pkg/repo"
)

var (
	ErrOrderNotFound = fmt.Errorf("order not found")
)

const (
	orderFindQuery = `
		SELECT o.id, o.tenant_id, o.number, o.status, o.customer_name, o.customer_phone, o.customer_email, o.comment, o.currency, o.created_at, o.updated_at
		FROM orders o`
	orderCountQuery = `SELECT COUNT(*) FROM orders o`
	orderItemsQuery = `
		SELECT i.order_id, i.product_id, i.name, i.price_minor, i.quantity
		FROM order_items i
		WHERE i.order_id = ANY ($1)
		ORDER BY i.name`
	// Numbers restart at 1 for every tenant. The insert runs inside the
	// request transaction, so concurrent storefront checkouts may retry on
	// the (tenant_id, number) unique constraint.
	orderNextNumberQuery = `SELECT COALESCE(MAX(number), 0) + 1 FROM orders WHERE tenant_id = $1`
)

type PgOrderRepository struct{}

func NewOrderRepository() order.Repository {
	return &PgOrderRepository{}
}

func (g *PgOrderRepository) buildFilters(ctx context.Context, params *order.FindParams) ([]string, []interface{}, error) {
	var where []string
	var args []interface{}

	if params.Status != "" {
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)+1))
		args = append(args, string(params.Status))
	}

	if params.Search != "" {
		index := len(args) + 1
		where = append(
			where,
			fmt.Sprintf(
				"(o.customer_name ILIKE $%d OR o.customer_phone ILIKE $%d OR o.customer_email ILIKE $%d)",
				index, index, index,
			),
		)
		args = append(args, "%"+params.Search+"%")
	}

	return repo.ScopeFilters(ctx, "o.tenant_id", where, args)
}

func (g *PgOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	where, args, err := repo.ScopeFilters(ctx, "o.tenant_id", []string{"o.id = $1"}, []interface{}{id.String()})
	if err != nil {
		return nil, err
	}
	orders, err := g.queryOrders(ctx, repo.Join(orderFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

func (g *PgOrderRepository) GetByNumber(ctx context.Context, number int64) (*order.Order, error) {
	where, args, err := repo.ScopeFilters(ctx, "o.tenant_id", []string{"o.number = $1"}, []interface{}{number})
	if err != nil {
		return nil, err
	}
	orders, err := g.queryOrders(ctx, repo.Join(orderFindQuery, repo.JoinWhere(where...)), args...)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrOrderNotFound
	}
	return orders[0], nil
}

func (g *PgOrderRepository) GetPaginated(ctx context.Context, params *order.FindParams) ([]*order.Order, error) {
	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return nil, err
	}

	query := repo.Join(
		orderFindQuery,
		repo.JoinWhere(where...),
		"ORDER BY o.number DESC",
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)
	orders, err := g.queryOrders(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get paginated orders")
	}
	return orders, nil
}

func (g *PgOrderRepository) Count(ctx context.Context, params *order.FindParams) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get transaction")
	}

	where, args, err := g.buildFilters(ctx, params)
	if err != nil {
		return 0, err
	}

	var count int64
	query := repo.Join(orderCountQuery, repo.JoinWhere(where...))
	if err := tx.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}
	return count, nil
}

func (g *PgOrderRepository) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}
	tenantID, err := composables.UseTenantID(ctx)
	if err != nil {
		return nil, err
	}

	var number int64
	if err := tx.QueryRow(ctx, orderNextNumberQuery, tenantID.String()).Scan(&number); err != nil {
		return nil, errors.Wrap(err, "failed to allocate order number")
	}

	fields := []string{"id", "number", "status", "customer_name", "customer_phone", "customer_email", "comment", "currency", "created_at", "updated_at"}
	values := []interface{}{
		o.ID().String(),
		number,
		string(o.Status()),
		o.CustomerName(),
		o.CustomerPhone(),
		mapping.ValueToSQLNullString(o.CustomerEmail()),
		mapping.ValueToSQLNullString(o.Comment()),
		o.Currency(),
		o.CreatedAt(),
		o.UpdatedAt(),
	}
	fields, values, err = repo.ScopeInsert(ctx, fields, values)
	if err != nil {
		return nil, err
	}

	var idStr string
	if err := tx.QueryRow(ctx, repo.Insert("orders", fields, "id"), values...).Scan(&idStr); err != nil {
		return nil, errors.Wrap(err, "failed to insert order")
	}

	for _, item := range o.Items() {
		itemFields := []string{"order_id", "product_id", "name", "price_minor", "quantity"}
		itemValues := []interface{}{
			idStr,
			item.ProductID.String(),
			item.Name,
			item.PriceMinor,
			item.Quantity,
		}
		if _, err := tx.Exec(ctx, repo.Insert("order_items", itemFields), itemValues...); err != nil {
			return nil, errors.Wrap(err, "failed to insert order item")
		}
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, err
	}
	return g.GetByID(ctx, id)
}

func (g *PgOrderRepository) Update(ctx context.Context, o *order.Order) (*order.Order, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	// Line items are immutable after creation; only the mutable order
	// fields are written back.
	fields := []string{"status", "customer_name", "customer_phone", "customer_email", "comment", "updated_at"}
	values := []interface{}{
		string(o.Status()),
		o.CustomerName(),
		o.CustomerPhone(),
		mapping.ValueToSQLNullString(o.CustomerEmail()),
		mapping.ValueToSQLNullString(o.Comment()),
		o.UpdatedAt(),
	}

	where := []string{fmt.Sprintf("id = $%d", len(values)+1)}
	values = append(values, o.ID().String())
	where, values, err = repo.ScopeFilters(ctx, "tenant_id", where, values)
	if err != nil {
		return nil, err
	}

	query := repo.Update("orders", fields, where[0])
	for _, cond := range where[1:] {
		query += " AND " + cond
	}
	if _, err := tx.Exec(ctx, query, values...); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}
	return g.GetByID(ctx, o.ID())
}

func (g *PgOrderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*order.Order, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	var rowModels []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(
			&o.ID,
			&o.TenantID,
			&o.Number,
			&o.Status,
			&o.CustomerName,
			&o.CustomerPhone,
			&o.CustomerEmail,
			&o.Comment,
			&o.Currency,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan order row")
		}
		rowModels = append(rowModels, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	if len(rowModels) == 0 {
		return nil, nil
	}

	itemsByOrder, err := g.queryItems(ctx, rowModels)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rowModels))
	for _, o := range rowModels {
		entity, err := toDomainOrder(o, itemsByOrder[o.ID])
		if err != nil {
			return nil, errors.Wrap(err, "failed to map order row")
		}
		orders = append(orders, entity)
	}
	return orders, nil
}

func (g *PgOrderRepository) queryItems(ctx context.Context, orders []*models.Order) (map[string][]*models.OrderItem, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	rows, err := tx.Query(ctx, orderItemsQuery, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query order items")
	}
	defer rows.Close()

	itemsByOrder := make(map[string][]*models.OrderItem)
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.PriceMinor,
			&item.Quantity,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan order item row")
		}
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], &item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "row iteration error")
	}
	return itemsByOrder, nil
}
