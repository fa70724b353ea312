// Package metrics defines all custom Prometheus metrics for the books API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "books"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - role: the resolved role of the new session ("admin", "accountant", "contact")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by resolved role.",
	},
	[]string{"role"},
)

// LoginFailuresTotal counts rejected logins.
// Label:
//   - reason: short description of the failure (e.g. "invalid_credentials", "invalid_role", "superseded", "cache_write")
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected logins, by reason.",
	},
	[]string{"reason"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "hit" (cached identity restored) or "miss" (absent or malformed)
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Validation metrics ────────────────────────────────────────────────────────

// ValidationFailuresTotal counts submit-time form validation failures.
// Label:
//   - field: the first failing field name (e.g. "password", "loginId")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of form submissions rejected by field rules, by first failing field.",
	},
	[]string{"field"},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// UsersCreatedTotal counts directory accounts created by administrators.
// Label:
//   - role: the role assigned to the new account
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of directory users created, by role.",
	},
	[]string{"role"},
)

// ── Audit pipeline metrics ────────────────────────────────────────────────────

// AuditErrorsTotal counts session events that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var AuditErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_errors_total",
		Help:      "Total number of session audit events that failed processing.",
	},
	[]string{"reason"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of session events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// AuditProcessingDuration measures how long one session event takes to persist.
// Label:
//   - action: "login", "logout", or "restore"
var AuditProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "audit_processing_duration_seconds",
		Help:      "Duration of session event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"action"},
)
