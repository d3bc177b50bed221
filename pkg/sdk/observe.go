package hbnb

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/hbnb/internal/domain"
)

// Outcome labels of hbnb_sdk_operations_total.
const (
	statusOK       = "ok"
	statusNotFound = "not_found"
	statusInvalid  = "invalid"
	statusError    = "error"
)

// sdkMetrics holds the per-operation counters and latencies of the
// embedded client. Operations are named <resource>.<action>, e.g.
// "place.link_amenity"; client-wide calls use a bare name ("search").
type sdkMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hbnb",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Embedded hbnb client operations by operation and outcome.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hbnb",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "Embedded hbnb client operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses an existing one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("hbnb: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("hbnb: register metric: %w", err)
	}
	return nil
}

// observer logs and counts every call made through the client.
type observer struct {
	logger  *slog.Logger
	metrics *sdkMetrics
}

func newObserver(logger *slog.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *sdkMetrics
	if reg != nil {
		var err error
		m, err = newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// outcome classifies err. A missing entity or a rejected field is the
// caller's doing and is kept apart from store failures.
func outcome(err error) string {
	switch {
	case err == nil:
		return statusOK
	case errors.Is(err, domain.ErrNotFound):
		return statusNotFound
	case errors.Is(err, domain.ErrInvalidField), errors.Is(err, domain.ErrMalformedRequest):
		return statusInvalid
	default:
		return statusError
	}
}

func (o *observer) observe(op string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)
	status := outcome(err)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if o.logger == nil {
		return
	}
	resource, action, ok := strings.Cut(op, ".")
	if !ok {
		resource, action = "client", op
	}
	attrs := []any{"op", op, "resource", resource, "action", action, "status", status, "duration", dur}
	switch status {
	case statusOK:
		o.logger.Debug("hbnb call completed", attrs...)
	case statusError:
		o.logger.Warn("hbnb call failed", append(attrs, "error", err)...)
	default:
		o.logger.Debug("hbnb call rejected", append(attrs, "error", err)...)
	}
}

// call runs fn under op and records its outcome.
func call[T any](o *observer, op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	o.observe(op, start, err)
	return v, err
}
