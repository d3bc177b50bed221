package chi

import (
	"encoding/json"
	"net/http"

	"github.com/kailas-cloud/hbnb/internal/domain/search/filter"
)

// SearchPlaces handles POST /places_search. Keys that are missing or do not
// hold a list count as empty.
func (s *Server) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	_, fields, err := s.readObject(w, r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	f := filter.New(idList(fields["states"]), idList(fields["cities"]), idList(fields["amenities"]))

	places, err := s.svc.Search.Search(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(places, placeToJSON))
}

// idList reads a list of ids. String elements are taken as is; any other
// element is kept as its raw JSON text, which never names a stored entity.
func idList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil
	}
	ids := make([]string, 0, len(elems))
	for _, elem := range elems {
		var id string
		if err := json.Unmarshal(elem, &id); err != nil {
			id = string(elem)
		}
		ids = append(ids, id)
	}
	return ids
}
