package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	sharedError "github.com/uknowme/member-server/internal/shared/error"
)

// Operation outcomes
const (
	OutcomeSuccess       = "success"
	OutcomeValidation    = "validation"
	OutcomeAuthorization = "authorization"
	OutcomeNotFound      = "not_found"
	OutcomeError         = "error"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	memberOperations *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		memberOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "member_operations_total",
			Help: "Member service operations by outcome.",
		}, []string{"operation", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.memberOperations, m.httpRequests, m.httpDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) ObserveMemberOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.memberOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(seconds)
}

// MemberOperations exposes the counter for tests and dashboards.
func (m *Metrics) MemberOperations() *prometheus.CounterVec {
	return m.memberOperations
}

func (m *Metrics) HTTPRequests() *prometheus.CounterVec {
	return m.httpRequests
}

// OutcomeOf maps a service error to an outcome label.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch sharedError.KindOf(err) {
	case sharedError.KindValidation:
		return OutcomeValidation
	case sharedError.KindAuthorization:
		return OutcomeAuthorization
	case sharedError.KindNotFound:
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
