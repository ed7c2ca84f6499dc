// Package metrics defines and registers all custom Prometheus metrics for the
// Gunung Agung Info API. It is the single source of truth for metric names,
// labels, and help strings.
//
// The promauto constructors register with the default registry at package
// init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gunungagung"

// AuthzDenialsTotal counts policy denials for authenticated callers.
// Label:
//   - action: the denied action kind (e.g. "edit_post", "change_role")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of authorization denials, by action.",
	},
	[]string{"action"},
)

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// CommentsCreatedTotal counts successfully created comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ResetRequestsTotal counts accepted password-reset requests. The self flow
// counts every accepted request, not tokens issued, so the metric cannot be
// used to probe which emails have accounts.
// Label:
//   - source: "self" (forgot-password flow) or "admin" (super-admin trigger)
var ResetRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_requests_total",
		Help:      "Total number of password-reset requests accepted, by source.",
	},
	[]string{"source"},
)
