// Package metrics defines and registers all custom Prometheus metrics for
// the account service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// LoginsTotal counts login attempts.
// Label:
//   - outcome: "success", "not_found", "invalid_credentials", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts successful account registrations.
// Label:
//   - role: "USER" or "TECHNICIAN"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// PasswordChangesTotal counts password change attempts.
// Label:
//   - outcome: "success", "not_found", "incorrect_old", "weak_password", or "error"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, by outcome.",
	},
	[]string{"outcome"},
)

// ProfileRequestsTotal counts profile reads and updates that reached the
// service layer.
// Labels:
//   - op: "get" or "update"
//   - role: the role named in the request (uppercased), or "unsupported"
var ProfileRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_requests_total",
		Help:      "Total number of profile operations, by operation and role.",
	},
	[]string{"op", "role"},
)
