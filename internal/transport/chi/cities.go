package chi

import (
	"net/http"

	domcity "github.com/kailas-cloud/hbnb/internal/domain/city"
)

// ListStateCities handles GET /states/{state_id}/cities.
func (s *Server) ListStateCities(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "state_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	cities, err := s.svc.Cities.ListByState(r.Context(), stateID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(cities, cityToJSON))
}

// CreateCity handles POST /states/{state_id}/cities.
func (s *Server) CreateCity(w http.ResponseWriter, r *http.Request) {
	stateID, err := pathID(r, "state_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req nameRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.svc.Cities.Create(r.Context(), stateID, req.Name)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cityToJSON(c))
}

// GetCity handles GET /cities/{city_id}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "city_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.svc.Cities.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cityToJSON(c))
}

// UpdateCity handles PUT /cities/{city_id}.
func (s *Server) UpdateCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "city_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var p domcity.Patch
	if err := s.decodeBody(w, r, &p); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	c, err := s.svc.Cities.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cityToJSON(c))
}

// DeleteCity handles DELETE /cities/{city_id}.
func (s *Server) DeleteCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "city_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.Cities.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}
