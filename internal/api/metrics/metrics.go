// Package metrics defines and registers all custom Prometheus metrics for
// the travel platform. It is the single source of truth for metric names,
// labels, and help strings; request-level metrics come from the
// echoprometheus middleware instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "travel"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (bad email and bad password are one bucket)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts bearer token validations.
// Label:
//   - result: "valid", "rejected" (expired/bad signature/malformed), or "missing"
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of token validations, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role granted to the new identity
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by role.",
	},
	[]string{"role"},
)

// DestinationWritesTotal counts successful catalog mutations.
// Label:
//   - op: "create" or "delete"
var DestinationWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "destination_writes_total",
		Help:      "Total number of successful destination catalog writes, by operation.",
	},
	[]string{"op"},
)
