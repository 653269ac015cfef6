package analytics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Tracker counts storefront activity for the /metrics endpoint. Events are
// fire-and-forget; counters only ever go up.
type Tracker struct {
	events  *prometheus.CounterVec
	orders  prometheus.Counter
	revenue prometheus.Counter
}

func New(reg prometheus.Registerer) *Tracker {
	t := &Tracker{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookhaven_events_total",
			Help: "Storefront analytics events by name.",
		}, []string{"name"}),
		orders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookhaven_orders_total",
			Help: "Completed checkouts.",
		}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookhaven_revenue_total",
			Help: "Revenue from completed checkouts.",
		}),
	}
	reg.MustRegister(t.events, t.orders, t.revenue)
	return t
}

func (t *Tracker) Event(name string) {
	t.events.WithLabelValues(name).Inc()
}

func (t *Tracker) OrderCompleted(total float64) {
	t.orders.Inc()
	t.revenue.Add(total)
}
