package dtos

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
)

var Validate = validator.New()

type OrderItemRequest struct {
	ProductID  uuid.UUID `json:"productId" validate:"required"`
	Name       string    `json:"name" validate:"required,max=255"`
	PriceMinor int64     `json:"priceMinor" validate:"gte=0"`
	Quantity   int       `json:"quantity" validate:"gt=0"`
}

type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName" validate:"required,max=255"`
	CustomerPhone string             `json:"customerPhone" validate:"required,max=32"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	Comment       string             `json:"comment"`
	Currency      string             `json:"currency" validate:"omitempty,len=3"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type SetStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new processing shipped delivered cancelled"`
}

type OrderItemResponse struct {
	ProductID  uuid.UUID `json:"productId"`
	Name       string    `json:"name"`
	PriceMinor int64     `json:"priceMinor"`
	Quantity   int       `json:"quantity"`
	TotalMinor int64     `json:"totalMinor"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	Number        int64               `json:"number"`
	Status        string              `json:"status"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	CustomerEmail string              `json:"customerEmail,omitempty"`
	Comment       string              `json:"comment,omitempty"`
	Currency      string              `json:"currency"`
	TotalMinor    int64               `json:"totalMinor"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func NewOrderResponse(o *order.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
			TotalMinor: item.TotalMinor(),
		})
	}
	return &OrderResponse{
		ID:            o.ID(),
		Number:        o.Number(),
		Status:        string(o.Status()),
		CustomerName:  o.CustomerName(),
		CustomerPhone: o.CustomerPhone(),
		CustomerEmail: o.CustomerEmail(),
		Comment:       o.Comment(),
		Currency:      o.Currency(),
		TotalMinor:    o.TotalMinor(),
		Items:         items,
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func NewOrderListResponse(orders []*order.Order) []*OrderResponse {
	out := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, NewOrderResponse(o))
	}
	return out
}
