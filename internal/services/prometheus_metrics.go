package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricFilterActions        = "filter_actions"
	MetricFilterResultsStale   = "filter_results_stale"
	MetricFilterComputeFailed  = "filter_compute_failed"
	MetricFilterSessions       = "filter_sessions_active"
	MetricFilterSessionExpired = "filter_session_expired"
	MetricFilterCompute        = "filter_compute"
	MetricUtilityBillCreated   = "utility_bill_created"
	MetricUtilityBillRejected  = "utility_bill_rejected"
	MetricUtilityPayment       = "utility_payment_recorded"
	MetricUtilityPaymentAmount = "utility_payment_amount"
	MetricPageDataLoad         = "page_data_load"
)

type PrometheusMetrics struct {
	filterActions         *prometheus.CounterVec
	filterResultsStale    prometheus.Counter
	filterComputeFailed   *prometheus.CounterVec
	filterComputeDuration prometheus.Histogram
	filterSessionsActive  prometheus.Gauge
	filterSessionsExpired prometheus.Counter
	utilityBillsCreated   prometheus.Counter
	utilityBillsRejected  *prometheus.CounterVec
	utilityPayments       prometheus.Counter
	utilityPaymentAmount  prometheus.Histogram
	pageDataDuration      prometheus.Histogram
}

// NewPrometheusMetrics registers the service metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		filterActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_actions_total",
				Help: "Total number of filter state actions dispatched",
			},
			[]string{"action"},
		),
		filterResultsStale: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "filter_results_stale_total",
				Help: "Filter results applied after the criteria they were computed for had changed",
			},
		),
		filterComputeFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_compute_failures_total",
				Help: "Total number of failed filter result computations",
			},
			[]string{"reason"},
		),
		filterComputeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "filter_compute_duration_milliseconds",
				Help:    "Filter result computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		filterSessionsActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "filter_sessions_active",
				Help: "Current number of live filter sessions",
			},
		),
		filterSessionsExpired: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "filter_sessions_expired_total",
				Help: "Total number of filter sessions removed after idling",
			},
		),
		utilityBillsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "utility_bills_created_total",
				Help: "Total number of utility bills created",
			},
		),
		utilityBillsRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "utility_bills_rejected_total",
				Help: "Total number of rejected utility bills by reason",
			},
			[]string{"reason"},
		),
		utilityPayments: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "utility_payments_total",
				Help: "Total number of tenant utility payments recorded",
			},
		),
		utilityPaymentAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "utility_payment_amount",
				Help:    "Tenant utility payment amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
		pageDataDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "utility_page_data_duration_seconds",
				Help:    "Time to load a landlord's utility bill page data",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricFilterActions:
		if action := tags["action"]; action != "" {
			m.filterActions.WithLabelValues(action).Inc()
		}
	case MetricFilterResultsStale:
		m.filterResultsStale.Inc()
	case MetricFilterComputeFailed:
		reason := tags["reason"]
		if reason == "" {
			reason = "unknown"
		}
		m.filterComputeFailed.WithLabelValues(reason).Inc()
	case MetricFilterSessionExpired:
		m.filterSessionsExpired.Inc()
	case MetricUtilityBillCreated:
		m.utilityBillsCreated.Inc()
	case MetricUtilityBillRejected:
		if reason := tags["reason"]; reason != "" {
			m.utilityBillsRejected.WithLabelValues(reason).Inc()
		}
	case MetricUtilityPayment:
		m.utilityPayments.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricFilterCompute:
		m.filterComputeDuration.Observe(float64(duration.Milliseconds()))
	case MetricPageDataLoad:
		m.pageDataDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricFilterSessions:
		m.filterSessionsActive.Set(value)
	case MetricUtilityPaymentAmount:
		m.utilityPaymentAmount.Observe(value)
	}
}
