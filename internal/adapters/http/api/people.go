// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// Default paging parameters for GET /people.
const (
	defaultPage  = 1
	defaultLimit = 20
)

// PeopleHandler handles list requests.
type PeopleHandler struct {
	deps     Dependencies
	maxLimit int
}

// NewPeopleHandler creates a new list handler.
func NewPeopleHandler(deps Dependencies, maxLimit int) *PeopleHandler {
	return &PeopleHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// listResponse is the paged list envelope.
type listResponse struct {
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
	Items []*model.Person `json:"items"`
}

// HandleListPeople handles GET /people?page=N&limit=M requests.
func (h *PeopleHandler) HandleListPeople(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	page, err := queryInt(r, "page", defaultPage)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil || limit < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if limit > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}

	items, err := h.deps.List(r.Context(), (page-1)*limit, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{
		Page:  page,
		Limit: limit,
		Total: h.deps.Count(r.Context()),
		Items: items,
	})
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
