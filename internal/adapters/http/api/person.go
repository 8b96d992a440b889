// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dragnet-io/dragnet/internal/adapters/aging"
	"github.com/dragnet-io/dragnet/internal/adapters/repository"
	"github.com/dragnet-io/dragnet/internal/domain/images"
)

// Age-progression bounds; the collaborator degrades outside this range.
const (
	minAgeYears = 1
	maxAgeYears = 80
)

// PersonHandler handles detail and age-progression requests.
type PersonHandler struct {
	deps Dependencies
}

// NewPersonHandler creates a new person handler.
func NewPersonHandler(deps Dependencies) *PersonHandler {
	return &PersonHandler{deps: deps}
}

// HandlePerson routes GET /people/{id} and POST /people/{id}/age-progression.
func (h *PersonHandler) HandlePerson(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/people/")
	if path == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	if rawID, ok := strings.CutSuffix(path, "/age-progression"); ok {
		h.handleAgeProgression(w, r, rawID)
		return
	}
	if strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	h.handleDetail(w, r, path)
}

func (h *PersonHandler) handleDetail(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	person, err := h.deps.Get(r.Context(), rawID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (h *PersonHandler) handleAgeProgression(w http.ResponseWriter, r *http.Request, rawID string) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	years, err := queryInt(r, "years", 0)
	if err != nil || years < minAgeYears || years > maxAgeYears {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	image, err := h.deps.AgeProgression(r.Context(), rawID, years)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		case errors.Is(err, images.ErrNoRealImage):
			writeError(w, http.StatusUnprocessableEntity, "no_real_image", err)
		case errors.Is(err, aging.ErrDisabled):
			writeError(w, http.StatusServiceUnavailable, "aging_disabled", err)
		default:
			writeError(w, http.StatusBadGateway, "aging_failed", err)
		}
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", strconv.Itoa(len(image)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(image)
}
