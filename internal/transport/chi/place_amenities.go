package chi

import "net/http"

// ListPlaceAmenities handles GET /places/{place_id}/amenities.
func (s *Server) ListPlaceAmenities(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	items, err := s.svc.Places.Amenities(r.Context(), placeID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, amenityToJSON))
}

// LinkPlaceAmenity handles POST /places/{place_id}/amenities/{amenity_id}.
// A new link answers 201, an existing one 200.
func (s *Server) LinkPlaceAmenity(w http.ResponseWriter, r *http.Request) {
	placeID, amenityID, err := placeAmenityIDs(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	a, created, err := s.svc.Places.LinkAmenity(r.Context(), placeID, amenityID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, amenityToJSON(a))
}

// UnlinkPlaceAmenity handles DELETE /places/{place_id}/amenities/{amenity_id}.
func (s *Server) UnlinkPlaceAmenity(w http.ResponseWriter, r *http.Request) {
	placeID, amenityID, err := placeAmenityIDs(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.Places.UnlinkAmenity(r.Context(), placeID, amenityID); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}

func placeAmenityIDs(r *http.Request) (string, string, error) {
	placeID, err := pathID(r, "place_id")
	if err != nil {
		return "", "", err
	}
	amenityID, err := pathID(r, "amenity_id")
	if err != nil {
		return "", "", err
	}
	return placeID, amenityID, nil
}
