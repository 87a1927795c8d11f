package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "waste_bins_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	regenerateTotal   *prometheus.CounterVec
	regenerateLatency *prometheus.HistogramVec
	listTotal         *prometheus.CounterVec
	listLatency       *prometheus.HistogramVec
	storedBins        prometheus.Gauge
)

// Init registers the service metrics with the default registry. It is safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		regenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "regenerate_total",
				Help: "Total bin regenerations by result",
			},
			[]string{"result"},
		)
		regenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "regenerate_latency_seconds",
				Help:    "Bin regeneration latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		listTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "list_total",
				Help: "Total bin listings by result",
			},
			[]string{"result"},
		)
		listLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "list_latency_seconds",
				Help:    "Bin listing latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		storedBins = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: metricPrefix + "stored",
				Help: "Number of bins in the store as of start-up or the latest successful listing or regeneration",
			},
		)

		prometheus.MustRegister(
			regenerateTotal,
			regenerateLatency,
			listTotal,
			listLatency,
			storedBins,
		)
	})
}

func Handler() http.Handler {
	Init()
	return promhttp.Handler()
}

func ObserveRegenerate(count int, err error, duration time.Duration) {
	Init()
	result := resultLabel(err)
	regenerateTotal.WithLabelValues(result).Inc()
	regenerateLatency.WithLabelValues(result).Observe(duration.Seconds())
	if err == nil {
		storedBins.Set(float64(count))
	}
}

func ObserveList(count int, err error, duration time.Duration) {
	Init()
	result := resultLabel(err)
	listTotal.WithLabelValues(result).Inc()
	listLatency.WithLabelValues(result).Observe(duration.Seconds())
	if err == nil {
		storedBins.Set(float64(count))
	}
}

// SetStored records the number of bins currently in the store.
func SetStored(count int) {
	Init()
	storedBins.Set(float64(count))
}

func resultLabel(err error) string {
	if err != nil {
		return resultError
	}
	return resultSuccess
}
