package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/storo-shop/backend/modules/catalog/infrastructure/persistence"
	"github.com/storo-shop/backend/pkg/configuration"
	"github.com/storo-shop/backend/pkg/httpapi"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, persistence.ErrCategoryNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "category not found", nil)
	case errors.Is(err, persistence.ErrProductNotFound):
		_ = httpapi.WriteError(w, http.StatusNotFound, "not_found", "product not found", nil)
	default:
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "internal", err.Error(), nil)
	}
}

func limitParam(r *http.Request) int {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	return clampLimit(limit)
}

func offsetParam(r *http.Request) int {
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil {
		offset = 0
	}
	return clampOffset(offset)
}

func clampLimit(limit int) int {
	conf := configuration.Use()
	if limit <= 0 {
		return conf.PageSize
	}
	if limit > conf.MaxPageSize {
		return conf.MaxPageSize
	}
	return limit
}

func clampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
