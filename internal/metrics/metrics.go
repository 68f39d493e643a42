package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "raffles",
		Subsystem: "webhook",
		Name:      "requests_total",
		Help:      "Dolibarr webhook deliveries by response status.",
	}, []string{"status"})

	TicketsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffles",
		Subsystem: "webhook",
		Name:      "tickets_issued_total",
		Help:      "Tickets minted through the webhook pipeline.",
	})

	DuplicateDeliveries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "raffles",
		Subsystem: "webhook",
		Name:      "duplicate_deliveries_total",
		Help:      "Webhook deliveries rejected as replays of a processed transaction.",
	})
)
