// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dragnet-io/dragnet/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// List returns a page of the current snapshot in stored order.
	List(ctx context.Context, offset, limit int) ([]*model.Person, error)

	// Count returns the size of the current snapshot.
	Count(ctx context.Context) int

	// Get returns one person by raw identifier.
	Get(ctx context.Context, rawID string) (*model.Person, error)

	// AgeProgression runs the photo-aging collaborator on a person's
	// primary image.
	AgeProgression(ctx context.Context, rawID string, years int) ([]byte, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	peopleHandler *PeopleHandler
	personHandler *PersonHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxListLimit int) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		peopleHandler: NewPeopleHandler(deps, maxListLimit),
		personHandler: NewPersonHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/people", MetricsMiddleware(s.peopleHandler.HandleListPeople, "people"))
	mux.HandleFunc("/people/", MetricsMiddleware(s.personHandler.HandlePerson, "person"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
