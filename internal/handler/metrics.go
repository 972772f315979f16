package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "checkout_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of successfully created checkout orders",
		},
	)

	ordersFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "checkout_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed checkout order attempts",
		},
	)

	ordersDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "checkout_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of checkout orders written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "checkout_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Subsystem: "checkout_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of checkout order processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	orderTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "orders",
			Name:      "transitions_total",
			Help:      "Total number of order status transition requests",
		},
		[]string{"target", "result"},
	)

	stockReleasedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "inventory",
			Name:      "stock_released_total",
			Help:      "Total quantity of stock released back by cancellations and refunds",
		},
	)

	autoshipOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "autoships",
			Name:      "operations_total",
			Help:      "Total number of autoship lifecycle operations",
		},
		[]string{"operation", "result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProcessed,
		ordersFailed,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,

		orderTransitionsTotal,
		stockReleasedTotal,
		autoshipOperationsTotal,
	)
}
