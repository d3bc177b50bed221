package chi

import (
	"net/http"

	domamenity "github.com/kailas-cloud/hbnb/internal/domain/amenity"
)

// ListAmenities handles GET /amenities.
func (s *Server) ListAmenities(w http.ResponseWriter, r *http.Request) {
	items, err := s.svc.Amenities.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, amenityToJSON))
}

// GetAmenity handles GET /amenities/{amenity_id}.
func (s *Server) GetAmenity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "amenity_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	a, err := s.svc.Amenities.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amenityToJSON(a))
}

// CreateAmenity handles POST /amenities.
func (s *Server) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	a, err := s.svc.Amenities.Create(r.Context(), req.Name)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, amenityToJSON(a))
}

// UpdateAmenity handles PUT /amenities/{amenity_id}.
func (s *Server) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "amenity_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var p domamenity.Patch
	if err := s.decodeBody(w, r, &p); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	a, err := s.svc.Amenities.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amenityToJSON(a))
}

// DeleteAmenity handles DELETE /amenities/{amenity_id}.
func (s *Server) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "amenity_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.Amenities.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}
