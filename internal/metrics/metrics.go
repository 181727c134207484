package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	DealsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flyerplan_deals_collected_total",
		Help: "Deduplicated deal records collected across all runs.",
	})

	PagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flyerplan_pages_fetched_total",
		Help: "Upstream flyer API pages fetched.",
	})

	FetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flyerplan_fetch_failures_total",
		Help: "Per-unit (category or flyer) fetch failures.",
	}, []string{"unit"})

	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flyerplan_emails_sent_total",
		Help: "Meal plan emails delivered.",
	})

	PlansGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flyerplan_plans_generated_total",
		Help: "Meal plans produced by the language model.",
	})
)
