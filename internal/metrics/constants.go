package metrics

// Metric names
const (
	MetricNameCommandsTotal    = "loot_commands_total"
	MetricNameQueriesTotal     = "loot_queries_total"
	MetricNameQueryErrorsTotal = "loot_query_errors_total"
	MetricNameCatalogReloads   = "catalog_reloads_total"
	MetricNameCatalogItems     = "catalog_items"
	MetricNameCatalogDropped   = "catalog_rows_dropped"
	MetricNameQueryCacheHits   = "loot_query_cache_hits_total"
	MetricNameQueryCacheMisses = "loot_query_cache_misses_total"
)

// Metric help text
const (
	HelpTextCommandsTotal    = "Total number of slash commands handled"
	HelpTextQueriesTotal     = "Total number of loot filter queries executed"
	HelpTextQueryErrorsTotal = "Total number of loot queries rejected for invalid input"
	HelpTextCatalogReloads   = "Total number of catalog load attempts by result"
	HelpTextCatalogItems     = "Number of items in the current catalog snapshot"
	HelpTextCatalogDropped   = "Number of loot rows dropped by the join in the current snapshot"
	HelpTextQueryCacheHits   = "Total number of loot query cache hits"
	HelpTextQueryCacheMisses = "Total number of loot query cache misses"
)

// Label names
const (
	LabelCommand = "command"
	LabelResult  = "result"
)

// Values for the result label
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)
