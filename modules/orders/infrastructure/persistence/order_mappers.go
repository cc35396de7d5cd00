package persistence

import (
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
	"github.com/storo-shop/backend/modules/orders/infrastructure/persistence/models"
	"github.com/storo-shop/backend/pkg/mapping"
)

func toDomainOrder(o *models.Order, items []*models.OrderItem) (*order.Order, error) {
	id, err := uuid.Parse(o.ID)
	if err != nil {
		return nil, err
	}
	tenantID, err := uuid.Parse(o.TenantID)
	if err != nil {
		return nil, err
	}

	domainItems := make([]order.Item, 0, len(items))
	for _, item := range items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, order.Item{
			ProductID:  productID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}

	return order.New(
		o.CustomerName,
		o.CustomerPhone,
		order.WithID(id),
		order.WithTenantID(tenantID),
		order.WithNumber(o.Number),
		order.WithStatus(order.Status(o.Status)),
		order.WithCustomerEmail(mapping.SQLNullStringToValue(o.CustomerEmail)),
		order.WithComment(mapping.SQLNullStringToValue(o.Comment)),
		order.WithItems(domainItems),
		order.WithCurrency(o.Currency),
		order.WithCreatedAt(o.CreatedAt),
		order.WithUpdatedAt(o.UpdatedAt),
	), nil
}
