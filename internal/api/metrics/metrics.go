// Package metrics defines and registers all custom Prometheus metrics for the
// learning platform API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "learning"

// Result label values shared by the auth counters.
const (
	ResultSuccess            = "success"
	ResultDuplicate          = "duplicate"
	ResultInvalid            = "invalid"
	ResultInvalidCredentials = "invalid_credentials"
	ResultError              = "error"
)

// Decision label values for AccessDecisionsTotal.
const (
	DecisionAuthorized   = "authorized"
	DecisionUnauthorized = "unauthorized"
	DecisionForbidden    = "forbidden"
)

// ── Credential metrics ────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Labels:
//   - role: requested role, or "default" when omitted
//   - result: success, duplicate, invalid or error
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: success, invalid_credentials or error
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Access gate metrics ───────────────────────────────────────────────────────

// AccessDecisionsTotal counts access gate outcomes.
// Label:
//   - decision: authorized, unauthorized or forbidden
var AccessDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_decisions_total",
		Help:      "Total number of access gate decisions on protected routes.",
	},
	[]string{"decision"},
)

// ── Cache metrics ─────────────────────────────────────────────────────────────

// UserCacheLookupsTotal counts user cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var UserCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_cache_lookups_total",
		Help:      "Total number of user cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)
