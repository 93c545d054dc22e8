// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ers"

// HTTPRequestsTotal counts handled requests.
// Labels: method, route (the gin route pattern), status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency by route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// ReimbursementsSubmittedTotal counts reimbursements created, by type.
var ReimbursementsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reimbursements_submitted_total",
		Help:      "Total number of reimbursements submitted, by reimbursement type.",
	},
	[]string{"type"},
)

// ReimbursementsResolvedTotal counts resolutions, by resulting status (Approved/Denied).
var ReimbursementsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reimbursements_resolved_total",
		Help:      "Total number of reimbursements resolved, by final status.",
	},
	[]string{"status"},
)
