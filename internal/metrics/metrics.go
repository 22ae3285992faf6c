package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cyberguard"

// Recorder collects service counters on its own registry.
// A nil *Recorder discards every observation.
type Recorder struct {
	registry *prometheus.Registry

	passwordChecks *prometheus.CounterVec
	urlChecks      *prometheus.CounterVec
	submissions    *prometheus.CounterVec
	verdicts       *prometheus.CounterVec
}

// New creates a Recorder with process and Go runtime collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		passwordChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "password_checks_total",
			Help:      "Password strength checks by resulting strength.",
		}, []string{"strength"}),
		urlChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "url_checks_total",
			Help:      "Scored URLs by rule set and status.",
		}, []string{"ruleset", "status"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_created_total",
			Help:      "Submissions queued for review by kind.",
		}, []string{"kind"}),
		verdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "verdicts_total",
			Help:      "Reviewer verdicts by kind and verdict.",
		}, []string{"kind", "verdict"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.passwordChecks,
		r.urlChecks,
		r.submissions,
		r.verdicts,
	)
	return r
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) PasswordChecked(strength string) {
	if r == nil {
		return
	}
	r.passwordChecks.WithLabelValues(strength).Inc()
}

func (r *Recorder) URLChecked(ruleset, status string) {
	if r == nil {
		return
	}
	r.urlChecks.WithLabelValues(ruleset, status).Inc()
}

func (r *Recorder) SubmissionCreated(kind string) {
	if r == nil {
		return
	}
	r.submissions.WithLabelValues(kind).Inc()
}

func (r *Recorder) VerdictRecorded(kind, verdict string) {
	if r == nil {
		return
	}
	r.verdicts.WithLabelValues(kind, verdict).Inc()
}
