package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/orders/domain/entities/order"
	"github.com/storo-shop/backend/modules/orders/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/orders/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/orders/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type OrdersController struct {
	app application.Application
}

func NewOrdersController(app application.Application) application.Controller {
	return &OrdersController{app: app}
}

func (c *OrdersController) Key() string {
	return "/api/orders"
}

func (c *OrdersController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/orders").Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/number/{number:[0-9]+}", c.GetByNumber).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}/status", c.SetStatus).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/cancel", c.Cancel).Methods(http.MethodPost)
}

func (c *OrdersController) service() *services.OrderService {
	return c.app.Service(services.OrderService{}).(*services.OrderService)
}

func (c *OrdersController) List(w http.ResponseWriter, r *http.Request) {
	params := &order.FindParams{
		Limit:  limitParam(r),
		Offset: offsetParam(r),
		Status: order.Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("q"),
	}

	orders, err := c.service().GetPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	total, err := c.service().Count(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewOrderListResponse(orders), total)
}

func (c *OrdersController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	o, err := c.service().GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewOrderResponse(o))
}

func (c *OrdersController) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(mux.Vars(r)["number"], 10, 64)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_number", "number must be an integer", nil)
		return
	}
	o, err := c.service().GetByNumber(r.Context(), number)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewOrderResponse(o))
}

func (c *OrdersController) Create(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, order.Item{
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceMinor: item.PriceMinor,
			Quantity:   item.Quantity,
		})
	}
	opts := []order.Option{
		order.WithCustomerEmail(req.CustomerEmail),
		order.WithComment(req.Comment),
		order.WithItems(items),
	}
	if req.Currency != "" {
		opts = append(opts, order.WithCurrency(req.Currency))
	}

	created, err := c.service().Create(r.Context(), order.New(req.CustomerName, req.CustomerPhone, opts...))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewOrderResponse(created))
}

func (c *OrdersController) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	var req dtos.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	updated, err := c.service().SetStatus(r.Context(), id, order.Status(req.Status))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewOrderResponse(updated))
}

func (c *OrdersController) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	updated, err := c.service().Cancel(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewOrderResponse(updated))
}

func writeServiceError(w http.ResponseWriter, err error) {
	var invalid *order.InvalidTransitionError
	switch {
	case errors.Is(err, persistence.ErrOrderNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "order not found", nil)
	case errors.As(err, &invalid):
		_ = httpapi.WriteError(w, http.StatusConflict, "invalid_transition", invalid.Error(), nil)
	case errors.Is(err, services.ErrUnknownStatus):
		_ = httpapi.WriteError(w, http.StatusBadRequest, "unknown_status", err.Error(), nil)
	default:
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "internal", err.Error(), nil)
	}
}

func limitParam(r *http.Request) int {
	conf := configuration.Use()
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		return conf.PageSize
	}
	if limit > conf.MaxPageSize {
		return conf.MaxPageSize
	}
	return limit
}

func offsetParam(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
