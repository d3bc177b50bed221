package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kailas-cloud/hbnb/internal/metrics"
)

// APIPrefix is the mount point of the REST API.
const APIPrefix = "/api/v1"

// RouterOptions configures the cross-cutting middleware.
type RouterOptions struct {
	APIKeys   []string
	RateLimit float64
	RateBurst int
}

// NewRouter wires the middleware stack and every route of s.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(jsonRecoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.StripSlashes)
	r.Use(wideEventMiddleware(s.logger))
	r.Use(BearerAuthMiddleware(opts.APIKeys))
	r.Use(RateLimitMiddleware(opts.RateLimit, opts.RateBurst))
	r.Use(metrics.Middleware())

	r.NotFound(s.NotFound)
	r.MethodNotAllowed(s.MethodNotAllowed)

	r.Get("/health", s.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get("/status", s.Status)
		r.Get("/stats", s.Stats)

		r.Route("/states", func(r chi.Router) {
			r.Get("/", s.ListStates)
			r.Post("/", s.CreateState)
			r.Route("/{state_id}", func(r chi.Router) {
				r.Get("/", s.GetState)
				r.Put("/", s.UpdateState)
				r.Delete("/", s.DeleteState)
				r.Get("/cities", s.ListStateCities)
				r.Post("/cities", s.CreateCity)
			})
		})

		r.Route("/cities/{city_id}", func(r chi.Router) {
			r.Get("/", s.GetCity)
			r.Put("/", s.UpdateCity)
			r.Delete("/", s.DeleteCity)
			r.Get("/places", s.ListCityPlaces)
			r.Post("/places", s.CreatePlace)
		})

		r.Route("/amenities", func(r chi.Router) {
			r.Get("/", s.ListAmenities)
			r.Post("/", s.CreateAmenity)
			r.Get("/{amenity_id}", s.GetAmenity)
			r.Put("/{amenity_id}", s.UpdateAmenity)
			r.Delete("/{amenity_id}", s.DeleteAmenity)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.ListUsers)
			r.Post("/", s.CreateUser)
			r.Get("/{user_id}", s.GetUser)
			r.Put("/{user_id}", s.UpdateUser)
			r.Delete("/{user_id}", s.DeleteUser)
		})

		r.Route("/places/{place_id}", func(r chi.Router) {
			r.Get("/", s.GetPlace)
			r.Put("/", s.UpdatePlace)
			r.Delete("/", s.DeletePlace)
			r.Get("/reviews", s.ListPlaceReviews)
			r.Post("/reviews", s.CreateReview)
			r.Get("/amenities", s.ListPlaceAmenities)
			r.Post("/amenities/{amenity_id}", s.LinkPlaceAmenity)
			r.Delete("/amenities/{amenity_id}", s.UnlinkPlaceAmenity)
		})

		r.Route("/reviews/{review_id}", func(r chi.Router) {
			r.Get("/", s.GetReview)
			r.Put("/", s.UpdateReview)
			r.Delete("/", s.DeleteReview)
		})

		r.Post("/places_search", s.SearchPlaces)
	})

	return r
}
