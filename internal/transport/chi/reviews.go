package chi

import (
	"net/http"

	domreview "github.com/kailas-cloud/hbnb/internal/domain/review"
)

// ListPlaceReviews handles GET /places/{place_id}/reviews.
func (s *Server) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	reviews, err := s.svc.Reviews.ListByPlace(r.Context(), placeID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(reviews, reviewToJSON))
}

// CreateReview handles POST /places/{place_id}/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathID(r, "place_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var req createReviewRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	rv, err := s.svc.Reviews.Create(r.Context(), placeID, req.UserID, req.Text)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reviewToJSON(rv))
}

// GetReview handles GET /reviews/{review_id}.
func (s *Server) GetReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "review_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	rv, err := s.svc.Reviews.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewToJSON(rv))
}

// UpdateReview handles PUT /reviews/{review_id}.
func (s *Server) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "review_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	var p domreview.Patch
	if err := s.decodeBody(w, r, &p); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	rv, err := s.svc.Reviews.Update(r.Context(), id, p)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewToJSON(rv))
}

// DeleteReview handles DELETE /reviews/{review_id}.
func (s *Server) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "review_id")
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if err := s.svc.Reviews.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeEmpty(w)
}
