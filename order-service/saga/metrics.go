package saga

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sagaStartedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "order_saga_started_total",
			Help: "Total number of fulfillment sagas started",
		},
	)

	sagaEndedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_saga_ended_total",
			Help: "Total number of fulfillment sagas ended, by outcome",
		},
		[]string{"outcome"},
	)

	sagaStepFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_saga_step_failures_total",
			Help: "Total number of saga step failures that triggered compensation",
		},
		[]string{"step"},
	)
)

func init() {
	prometheus.MustRegister(sagaStartedTotal, sagaEndedTotal, sagaStepFailuresTotal)
}
