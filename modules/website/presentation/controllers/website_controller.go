package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/storo-shop/backend/modules/website/domain/entities/blogpost"
	"github.com/storo-shop/backend/modules/website/domain/entities/settings"
	"github.com/storo-shop/backend/modules/website/infrastructure/persistence"
	"github.com/storo-shop/backend/modules/website/presentation/controllers/dtos"
	"github.com/storo-shop/backend/modules/website/services"
	"github.com/storo-shop/backend/pkg/application"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

type WebsiteController struct {
	app application.Application
}

func NewWebsiteController(app application.Application) application.Controller {
	return &WebsiteController{app: app}
}

func (c *WebsiteController) Key() string {
	return "/api/website"
}

func (c *WebsiteController) Register(r *mux.Router) {
	router := r.PathPrefix("/api/website").Subrouter()
	router.HandleFunc("/settings", c.GetSettings).Methods(http.MethodGet)
	router.HandleFunc("/settings", c.SaveSettings).Methods(http.MethodPut)
	router.HandleFunc("/blog", c.ListPosts).Methods(http.MethodGet)
	router.HandleFunc("/blog", c.CreatePost).Methods(http.MethodPost)
	router.HandleFunc("/blog/slug/{slug}", c.GetPostBySlug).Methods(http.MethodGet)
	router.HandleFunc("/blog/{id:[0-9a-f-]+}", c.GetPost).Methods(http.MethodGet)
	router.HandleFunc("/blog/{id:[0-9a-f-]+}", c.UpdatePost).Methods(http.MethodPut)
	router.HandleFunc("/blog/{id:[0-9a-f-]+}", c.DeletePost).Methods(http.MethodDelete)
}

func (c *WebsiteController) service() *services.WebsiteService {
	return c.app.Service(services.WebsiteService{}).(*services.WebsiteService)
}

func (c *WebsiteController) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := c.service().GetSettings(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewSettingsResponse(s))
}

func (c *WebsiteController) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var req dtos.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	saved, err := c.service().SaveSettings(r.Context(), settings.New(
		req.Title,
		settings.WithDescription(req.Description),
		settings.WithLogoURL(req.LogoURL),
		settings.WithPalette(req.PrimaryColor, req.AccentColor),
		settings.WithContacts(req.ContactPhone, req.ContactEmail, req.Address),
		settings.WithSocials(req.Instagram, req.Facebook, req.Telegram),
	))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewSettingsResponse(saved))
}

func (c *WebsiteController) ListPosts(w http.ResponseWriter, r *http.Request) {
	params := &blogpost.FindParams{
		Limit:         limitParam(r),
		Offset:        offsetParam(r),
		PublishedOnly: r.URL.Query().Get("published") == "true",
		Search:        r.URL.Query().Get("q"),
	}

	posts, err := c.service().GetPostsPaginated(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	total, err := c.service().CountPosts(r.Context(), params)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteList(w, dtos.NewPostListResponse(posts), total)
}

func (c *WebsiteController) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	p, err := c.service().GetPostByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewPostResponse(p))
}

func (c *WebsiteController) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := c.service().GetPostBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewPostResponse(p))
}

func (c *WebsiteController) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	p := blogpost.New(req.Title, req.Slug, req.Body, blogpost.WithCoverURL(req.CoverURL))
	if req.Published {
		p.Publish()
	}
	created, err := c.service().CreatePost(r.Context(), p)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.NewPostResponse(created))
}

func (c *WebsiteController) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	var req dtos.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_body", "malformed json body", nil)
		return
	}
	if err := dtos.Validate.Struct(&req); err != nil {
		_ = httpapi.WriteError(w, http.StatusUnprocessableEntity, "validation_failed", err.Error(), nil)
		return
	}

	existing, err := c.service().GetPostByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	existing.SetTitle(req.Title)
	existing.SetSlug(req.Slug)
	existing.SetBody(req.Body)
	existing.SetCoverURL(req.CoverURL)
	if req.Published != nil {
		if *req.Published {
			existing.Publish()
		} else {
			existing.Unpublish()
		}
	}

	updated, err := c.service().UpdatePost(r.Context(), existing)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.NewPostResponse(updated))
}

func (c *WebsiteController) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "invalid_id", "id must be a uuid", nil)
		return
	}
	if err := c.service().DeletePost(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, persistence.ErrSettingsNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "site settings not configured yet", nil)
	case errors.Is(err, persistence.ErrPostNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "blog post not found", nil)
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
