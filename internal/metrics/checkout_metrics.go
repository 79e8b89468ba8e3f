package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics содержит метрики оформления заказов и операций с корзиной.
type CheckoutMetrics struct {
	// Счётчики операций
	ordersPlaced    prometheus.Counter
	checkoutsFailed *prometheus.CounterVec
	orderDetails    prometheus.Counter
	cartMutations   *prometheus.CounterVec

	// Гистограмма времени оформления
	checkoutDuration prometheus.Histogram
}

// NewCheckoutMetrics создаёт метрики и регистрирует их в default registerer.
func NewCheckoutMetrics() *CheckoutMetrics {
	return newCheckoutMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_orders_placed_total",
			Help: "Total number of orders placed successfully",
		}),
		checkoutsFailed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shopcart_checkouts_failed_total",
			Help: "Total number of failed checkout attempts grouped by reason",
		}, []string{"reason"}),
		orderDetails: registerCounter(registerer, prometheus.CounterOpts{
			Name: "shopcart_order_details_total",
			Help: "Total number of order detail rows written",
		}),
		cartMutations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "shopcart_cart_mutations_total",
			Help: "Total number of cart mutations grouped by operation",
		}, []string{"op"}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "shopcart_checkout_duration_seconds",
			Help:    "Duration of order placement in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderPlaced учитывает успешное оформление с count позициями.
func (m *CheckoutMetrics) RecordOrderPlaced(details int) {
	m.ordersPlaced.Inc()
	m.orderDetails.Add(float64(details))
}

// RecordCheckoutFailed учитывает неудачное оформление.
func (m *CheckoutMetrics) RecordCheckoutFailed(reason string) {
	m.checkoutsFailed.WithLabelValues(reason).Inc()
}

// RecordCartMutation учитывает операцию с корзиной (add/remove).
func (m *CheckoutMetrics) RecordCartMutation(op string) {
	m.cartMutations.WithLabelValues(op).Inc()
}

// RecordCheckoutDuration записывает время оформления заказа.
func (m *CheckoutMetrics) RecordCheckoutDuration(duration time.Duration) {
	m.checkoutDuration.Observe(duration.Seconds())
}
