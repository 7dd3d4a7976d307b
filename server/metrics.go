package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the server's Prometheus instruments on a private registry.
type metrics struct {
	registry      *prometheus.Registry
	parseRuns     prometheus.Counter
	clausesParsed prometheus.Gauge
	requestsTotal *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		parseRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clausegraph",
			Name:      "parse_runs_total",
			Help:      "Number of completed document parse runs.",
		}),
		clausesParsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "clausegraph",
			Name:      "clauses_parsed",
			Help:      "Clauses in the currently served collection.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clausegraph",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route.",
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.parseRuns,
		m.clausesParsed,
		m.requestsTotal,
	)
	return m
}
