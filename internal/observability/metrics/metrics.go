package metrics

import (
	"database/sql"
	"log"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "logistics_"

	// ResultSuccess labels a successful operation.
	ResultSuccess = "success"
	// ResultError labels a failed operation.
	ResultError = "error"
)

var (
	registerOnce sync.Once

	recapQueryTotal   *prometheus.CounterVec
	recapQueryLatency *prometheus.HistogramVec

	exportTotal   *prometheus.CounterVec
	exportLatency *prometheus.HistogramVec

	shipmentWriteTotal   *prometheus.CounterVec
	shipmentWriteLatency *prometheus.HistogramVec

	pinVerifyTotal *prometheus.CounterVec
)

// Init registers observability metrics and DB-backed gauges.
func Init(db *sql.DB, logger *log.Logger) {
	registerOnce.Do(func() {
		recapQueryTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "recap_queries_total",
				Help: "Total recap/dashboard aggregation passes by result",
			},
			[]string{"result"},
		)
		recapQueryLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "recap_query_latency_seconds",
				Help:    "Recap aggregation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)

		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Total export renders by format and result",
			},
			[]string{"format", "result"},
		)
		exportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "export_latency_seconds",
				Help:    "Export render latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"format", "result"},
		)

		shipmentWriteTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "shipment_writes_total",
				Help: "Total shipment mutations by operation and result",
			},
			[]string{"op", "result"},
		)
		shipmentWriteLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "shipment_write_latency_seconds",
				Help:    "Shipment mutation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op", "result"},
		)

		pinVerifyTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "pin_verify_total",
				Help: "Total lockscreen PIN verifications by result",
			},
			[]string{"result"},
		)

		prometheus.MustRegister(
			recapQueryTotal, recapQueryLatency,
			exportTotal, exportLatency,
			shipmentWriteTotal, shipmentWriteLatency,
			pinVerifyTotal,
		)

		registerDBMetrics(db, logger)
	})
}

// ObserveRecapQuery records one aggregation pass.
func ObserveRecapQuery(result string, elapsed time.Duration) {
	if recapQueryTotal == nil {
		return
	}
	recapQueryTotal.WithLabelValues(result).Inc()
	recapQueryLatency.WithLabelValues(result).Observe(elapsed.Seconds())
}

// ObserveExport records one export render.
func ObserveExport(format, result string, elapsed time.Duration) {
	if exportTotal == nil {
		return
	}
	exportTotal.WithLabelValues(format, result).Inc()
	exportLatency.WithLabelValues(format, result).Observe(elapsed.Seconds())
}

// ObserveShipmentWrite records one shipment mutation.
func ObserveShipmentWrite(op, result string, elapsed time.Duration) {
	if shipmentWriteTotal == nil {
		return
	}
	shipmentWriteTotal.WithLabelValues(op, result).Inc()
	shipmentWriteLatency.WithLabelValues(op, result).Observe(elapsed.Seconds())
}

// ObservePINVerify records one lockscreen verification.
func ObservePINVerify(result string) {
	if pinVerifyTotal == nil {
		return
	}
	pinVerifyTotal.WithLabelValues(result).Inc()
}
