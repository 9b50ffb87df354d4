// Package metrics defines all custom Prometheus metrics for the
// pricelist API. It is the single source of truth for metric names,
// labels, and help strings; HTTP-level request metrics come from the
// echoprometheus middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pricelist"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ItemMutationsTotal counts price-item writes.
// Label:
//   - op: "create", "update", or "delete"
var ItemMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "item_mutations_total",
		Help:      "Total number of price-item mutations, by operation.",
	},
	[]string{"op"},
)

// TranslationCacheTotal counts translation-table cache lookups.
// Label:
//   - result: "hit" or "miss"
var TranslationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translation_cache_total",
		Help:      "Total number of translation cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)

// SessionRejectionsTotal counts requests refused by the auth middleware.
// Label:
//   - reason: "missing", "invalid", or "expired"
var SessionRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_rejections_total",
		Help:      "Total number of requests rejected for session problems.",
	},
	[]string{"reason"},
)
