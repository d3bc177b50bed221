package chi

import (
	"net/http"

	healthuc "github.com/kailas-cloud/hbnb/internal/usecase/health"
)

type statusResponse struct {
	Status string `json:"status"`
}

type healthResponse struct {
	Status healthuc.Status                 `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

// Status handles GET /status.
func (s *Server) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}

// Stats handles GET /stats.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.svc.Stats.Counts(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// Health handles GET /health. A degraded store answers 503.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.svc.Health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthResponse{Status: report.Status, Checks: report.Checks})
}
