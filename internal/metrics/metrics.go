package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Command metrics
var (
	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)
)

// Catalog metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	CatalogDropped = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogDropped,
			Help: HelpTextCatalogDropped,
		},
	)
)

// Query cache metrics
var (
	QueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQueriesTotal,
			Help: HelpTextQueriesTotal,
		},
	)

	QueryErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQueryErrorsTotal,
			Help: HelpTextQueryErrorsTotal,
		},
	)

	QueryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQueryCacheHits,
			Help: HelpTextQueryCacheHits,
		},
	)

	QueryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQueryCacheMisses,
			Help: HelpTextQueryCacheMisses,
		},
	)
)
