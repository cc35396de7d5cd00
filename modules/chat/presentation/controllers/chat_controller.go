package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/chat/domain/entities/chat"
	"github.com/storo-shop/backend/modules/chat/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/chat/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/chat/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type ChatController struct {
	app application.Application
}

func NewChatController(app application.Application) application.Controller {
	return &ChatController{app: app}
}

func (c *ChatController) Key() string {
	return "/api/chat"
}

func (c *ChatController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/chat/threads").Subrouter()
	router.HandleFunc("", c.ListThreads).Methods(http.MethodGet)
	router.HandleFunc("", c.CreateThread).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}", c.GetThread).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}/close", c.CloseThread).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/messages", c.ListMessages).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}/messages", c.SendMessage).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/read", c.MarkRead).Methods(http.MethodPost)
	router.HandleFunc("/{id:[0-9a-f-]+}/typing", c.Typing).Methods(http.MethodGet)
	router.HandleFunc("/{id:[0-9a-f-]+}/typing", c.TouchTyping).Methods(http.MethodPost)
}

func (c *ChatController) service() *services.ChatService {
	return c.app.Service(services.ChatService{}).(*services.ChatService)
}

func (c *ChatController) ListThreads(w http.ResponseWriter, r *http.Request) {
	params := &chat.ThreadFindParams{
		Limit:  limitParam(r),
		Offset: offsetParam(r),
		Status: chat.ThreadStatus(r.URL.Query().Get("status")),
	}

	threads, err := c.service().GetThreadsPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	total, err := c.service().CountThreads(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewThreadListResponse(threads), total)
}

func (c *ChatController) GetThread(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	t, err := c.service().GetThreadByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewThreadResponse(t))
}

func (c *ChatController) CreateThread(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	created, err := c.service().CreateThread(r.Context(), chat.NewThread(
		req.ClientName,
		chat.WithClientPhone(req.ClientPhone),
	))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if _, err := c.service().SendMessage(r.Context(), created.ID(), chat.SenderClient, req.Body); err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewThreadResponse(created))
}

func (c *ChatController) CloseThread(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	t, err := c.service().CloseThread(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewThreadResponse(t))
}

func (c *ChatController) ListMessages(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	messages, err := c.service().GetMessages(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewMessageListResponse(messages))
}

func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	var req dtos.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	m, err := c.service().SendMessage(r.Context(), id, chat.Sender(req.Sender), req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewMessageResponse(m))
}

func (c *ChatController) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	var req dtos.MarkReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}
	if err := c.service().MarkRead(r.Context(), id, chat.Sender(req.Sender)); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ChatController) Typing(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	typing, err := c.service().Typing(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &dtos.TypingResponse{Typing: typing})
}

func (c *ChatController) TouchTyping(w http.ResponseWriter, r *http.Request) {
	id, ok := threadID(w, r)
	if !ok {
		return
	}
	var req dtos.TouchTypingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}
	if err := c.service().Touch(r.Context(), id, req.Participant); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func threadID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, persistence.ErrThreadNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "chat thread not found", nil)
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
