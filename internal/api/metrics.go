package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pesapal_client",
			Name:      "requests_total",
			Help:      "Gateway requests attempted, by endpoint.",
		},
		[]string{"endpoint"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pesapal_client",
			Name:      "request_failures_total",
			Help:      "Gateway requests that ended in an error, by endpoint.",
		},
		[]string{"endpoint"},
	)

	tokenRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pesapal_client",
			Name:      "token_refreshes_total",
			Help:      "Successful bearer token refreshes.",
		},
	)
)
