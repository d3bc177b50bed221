package chi

import (
	"net/http"

	domstate "github.com/kailas-cloud/hbnb/internal/domain/state"
)

// ListStates handles GET /states.
func (s *Server) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := s.svc.States.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(states, stateToJSON))
}

// GetState handles GET /states/{state_id}.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "state_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	st, err := s.svc.States.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToJSON(st))
}

// CreateState handles POST /states.
func (s *Server) CreateState(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	st, err := s.svc.States.Create(r.Context(), req.Name)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, stateToJSON(st))
}

// UpdateState handles PUT /states/{state_id}.
func (s *Server) UpdateState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "state_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var p domstate.Patch
	if err := s.decodeBody(w, r, &p); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	st, err := s.svc.States.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stateToJSON(st))
}

// DeleteState handles DELETE /states/{state_id}.
func (s *Server) DeleteState(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "state_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.States.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}
