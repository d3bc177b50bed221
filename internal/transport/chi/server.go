// Package chi exposes the hbnb REST API over a chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/hbnb/internal/domain"
	"github.com/kailas-cloud/hbnb/internal/logger"
	amenityuc "github.com/kailas-cloud/hbnb/internal/usecase/amenity"
	cityuc "github.com/kailas-cloud/hbnb/internal/usecase/city"
	healthuc "github.com/kailas-cloud/hbnb/internal/usecase/health"
	placeuc "github.com/kailas-cloud/hbnb/internal/usecase/place"
	reviewuc "github.com/kailas-cloud/hbnb/internal/usecase/review"
	searchuc "github.com/kailas-cloud/hbnb/internal/usecase/search"
	stateuc "github.com/kailas-cloud/hbnb/internal/usecase/state"
	statsuc "github.com/kailas-cloud/hbnb/internal/usecase/stats"
	useruc "github.com/kailas-cloud/hbnb/internal/usecase/user"
)

// Client-facing error messages.
const (
	msgNotAJSON         = "Not a JSON"
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgInternal         = "internal error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Services bundles the use cases served over HTTP.
type Services struct {
	States    *stateuc.Service
	Cities    *cityuc.Service
	Amenities *amenityuc.Service
	Users     *useruc.Service
	Places    *placeuc.Service
	Reviews   *reviewuc.Service
	Search    searchuc.Searcher
	Stats     *statsuc.Service
	Health    *healthuc.Service
}

// Server implements the HTTP handlers.
type Server struct {
	svc           Services
	logger        *zap.Logger
	maxBodyBytes  int64
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(svc Services, logger *zap.Logger) *Server {
	s := &Server{svc: svc, logger: logger, maxBodyBytes: 1 << 20}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrMalformedRequest, http.StatusBadRequest, msgNotAJSON),
		missingFieldHandler,
		invalidFieldHandler,
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, msgNotFound),
	}
	return s
}

// WithMaxBodyBytes limits request body size.
func (s *Server) WithMaxBodyBytes(n int64) *Server {
	if n > 0 {
		s.maxBodyBytes = n
	}
	return s
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeEmpty writes the {} body returned by deletes.
func writeEmpty(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, struct{}{})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, message string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, message)
		return true
	}
}

// missingFieldHandler renders "Missing <field>".
func missingFieldHandler(w http.ResponseWriter, err error) bool {
	var mf *domain.MissingFieldError
	if !errors.As(err, &mf) {
		return false
	}
	writeError(w, http.StatusBadRequest, mf.Error())
	return true
}

// invalidFieldHandler reports the innermost validation message.
func invalidFieldHandler(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, domain.ErrInvalidField) {
		return false
	}
	writeError(w, http.StatusBadRequest, err.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, msgInternal)
}

// NotFound handles unknown routes.
func (s *Server) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed handles known routes with an unsupported method.
func (s *Server) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}
