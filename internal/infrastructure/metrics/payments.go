package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	register(
		paymentIntentsTotal,
		reconciliationsTotal,
		webhookEventsTotal,
		processorRequestDuration,
	)
}

var (
	paymentIntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_intents_total",
			Help: "PIX payment intents by kind (sale/subscription) and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	reconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_reconciliations_total",
			Help: "Reconciliation passes by entity, trigger and resulting status.",
		},
		[]string{"entity", "trigger", "status"},
	)

	webhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mp_webhook_events_total",
			Help: "Mercado Pago notifications by outcome.",
		},
		[]string{"outcome"},
	)

	processorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mp_request_duration_seconds",
			Help:    "Latency of Mercado Pago API calls.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
)

func IncPaymentIntent(kind, outcome string) {
	paymentIntentsTotal.WithLabelValues(norm(kind), norm(outcome)).Inc()
}

func IncReconciliation(entity, trigger, status string) {
	reconciliationsTotal.WithLabelValues(norm(entity), norm(trigger), norm(status)).Inc()
}

func IncWebhookEvent(outcome string) {
	webhookEventsTotal.WithLabelValues(norm(outcome)).Inc()
}

// ObserveProcessorRequest records a processor call that started at start.
func ObserveProcessorRequest(operation string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	processorRequestDuration.WithLabelValues(norm(operation), outcome).Observe(time.Since(start).Seconds())
}
