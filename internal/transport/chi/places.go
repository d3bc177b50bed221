package chi

import (
	"net/http"

	domplace "github.com/kailas-cloud/hbnb/internal/domain/place"
)

// ListCityPlaces handles GET /cities/{city_id}/places.
func (s *Server) ListCityPlaces(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "city_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	places, err := s.svc.Places.ListByCity(r.Context(), cityID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(places, placeToJSON))
}

// CreatePlace handles POST /cities/{city_id}/places.
func (s *Server) CreatePlace(w http.ResponseWriter, r *http.Request) {
	cityID, err := pathID(r, "city_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req createPlaceRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	p, err := s.svc.Places.Create(r.Context(), cityID, req.draft())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, placeToJSON(p))
}

// GetPlace handles GET /places/{place_id}.
func (s *Server) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	p, err := s.svc.Places.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placeToJSON(p))
}

// UpdatePlace handles PUT /places/{place_id}. Owner fields are ignored.
func (s *Server) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var p domplace.Patch
	if err := s.decodeBody(w, r, &p); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	updated, err := s.svc.Places.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placeToJSON(updated))
}

// DeletePlace handles DELETE /places/{place_id}.
func (s *Server) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.Places.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}
