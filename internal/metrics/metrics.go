package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	OrdersCreated     prometheus.Counter
	OrdersCancelled   prometheus.Counter
	StockConflicts    prometheus.Counter
	LineTransitions   *prometheus.CounterVec
	TransitionsDenied prometheus.Counter
	StockAdjustments  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_created_total",
			Help: "Orders successfully created at checkout.",
		}),
		OrdersCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_orders_cancelled_total",
			Help: "Orders cancelled by their owner.",
		}),
		StockConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_stock_conflicts_total",
			Help: "Checkout attempts rejected for insufficient stock.",
		}),
		LineTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_line_transitions_total",
			Help: "Order line status transitions by target status.",
		}, []string{"status"}),
		TransitionsDenied: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_line_transitions_denied_total",
			Help: "Line transitions rejected by the status graph.",
		}),
		StockAdjustments: factory.NewCounter(prometheus.CounterOpts{
			Name: "marketplace_stock_adjustments_total",
			Help: "Applied producer and admin stock corrections.",
		}),
	}
}
