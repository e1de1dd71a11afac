package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlansResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_plans_resolved_total",
			Help: "Total number of utterances resolved into a plan, by intent",
		},
		[]string{"intent"},
	)

	PlanFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_plan_failures_total",
			Help: "Total number of utterances that could not be resolved, by error kind",
		},
		[]string{"kind"},
	)

	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_generation_duration_seconds",
			Help:    "Duration of generation backend calls in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 8),
		},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "assistant_search_duration_seconds",
			Help:    "Duration of catalog filter and rank passes in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)

	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "assistant_catalog_records",
			Help: "Number of property records in the active catalog",
		},
	)

	CatalogLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_catalog_loads_total",
			Help: "Total number of catalog load attempts, by result",
		},
		[]string{"result"},
	)
)
