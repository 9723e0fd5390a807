package stats

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func MilisecondsElapsed(from time.Time) float64 {
	return float64(time.Since(from)) / float64(time.Millisecond)
}

var (
	prometheusMetricsFactory promauto.Factory                  = promauto.With(prometheus.DefaultRegisterer)
	counterVecs              map[string]*prometheus.CounterVec = map[string]*prometheus.CounterVec{
		"writtenEntries": prometheusMetricsFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibsen_written_entries_total",
			Help: "The number of entries appended to topics.",
		}, []string{"topic"}),
		"writtenBytes": prometheusMetricsFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibsen_written_bytes_total",
			Help: "The number of payload bytes appended to topics.",
		}, []string{"topic"}),
		"readEntries": prometheusMetricsFactory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibsen_read_entries_total",
			Help: "The number of entries streamed to readers.",
		}, []string{"topic"}),
	}
	gaugeVecs map[string]*prometheus.GaugeVec = map[string]*prometheus.GaugeVec{
		"activeReaders": prometheusMetricsFactory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ibsen_active_readers",
			Help: "The number of reads in progress.",
		}, []string{"follow"}),
	}
	histogramVecs map[string]*prometheus.HistogramVec = map[string]*prometheus.HistogramVec{
		"writeTime": prometheusMetricsFactory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ibsen_write_time_milliseconds",
			Help:    "The time elapsed appending a batch to a topic.",
			Buckets: []float64{0.1, 0.5, 1, 5, 50, 100},
		}, []string{"result"}),
		"readBatchSize": prometheusMetricsFactory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ibsen_read_batch_size_entries",
			Help:    "The number of entries in each chunk streamed to readers.",
			Buckets: []float64{1, 10, 100, 1000, 10000},
		}, []string{"follow"}),
	}
)

func HistogramVec(name string) *prometheus.HistogramVec {
	return histogramVecs[name]
}

func GaugeVec(name string) *prometheus.GaugeVec {
	return gaugeVecs[name]
}

func CounterVec(name string) *prometheus.CounterVec {
	return counterVecs[name]
}

func ListenAndServe(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", port), mux)
}
