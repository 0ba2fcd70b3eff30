package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "editor"

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Number of handled HTTP requests",
}, []string{"route", "method", "status"})

var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "Latency of handled HTTP requests",
	Buckets:   prometheus.DefBuckets,
}, []string{"route", "method"})

// CollaboratorErrors counts failed lookups while exporting the runtime settings,
// section is the part of the response that was omitted
var CollaboratorErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "settings",
	Name:      "collaborator_errors_total",
	Help:      "Number of failed collaborator calls while exporting settings",
}, []string{"section"})

var SettingsReloads = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "settings",
	Name:      "reloads_total",
	Help:      "Number of runtime settings reloads",
}, []string{"result"})
