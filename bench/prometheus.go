package bench

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hupe1980/splaycache"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// PrometheusCollector implements splaycache.MetricsCollector with Prometheus
// histograms and counters labeled by cache implementation.
type PrometheusCollector struct {
	fibDuration    *prometheus.HistogramVec
	accessDuration *prometheus.HistogramVec
	lookups        *prometheus.CounterVec
}

var _ splaycache.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheusCollector creates the collector's metrics and registers them
// with reg.
func NewPrometheusCollector(reg prometheus.Registerer) (*PrometheusCollector, error) {
	c := &PrometheusCollector{
		fibDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splaycache",
			Subsystem: "bench",
			Name:      "fibonacci_duration_seconds",
			Help:      "Wall-clock duration of one memoized Fibonacci call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"cache"}),
		accessDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splaycache",
			Subsystem: "bench",
			Name:      "access_duration_seconds",
			Help:      "Wall-clock duration of a full access workload.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 10),
		}, []string{"cache"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splaycache",
			Subsystem: "bench",
			Name:      "lookups_total",
			Help:      "Cache lookups during access workloads.",
		}, []string{"cache", "result"}),
	}

	for _, col := range []prometheus.Collector{c.fibDuration, c.accessDuration, c.lookups} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return c, nil
}

// RecordFibonacci implements splaycache.MetricsCollector.
func (c *PrometheusCollector) RecordFibonacci(cache string, _ int, duration time.Duration) {
	c.fibDuration.WithLabelValues(cache).Observe(duration.Seconds())
}

// RecordAccess implements splaycache.MetricsCollector.
func (c *PrometheusCollector) RecordAccess(cache string, hits, misses int, duration time.Duration) {
	c.accessDuration.WithLabelValues(cache).Observe(duration.Seconds())
	c.lookups.WithLabelValues(cache, "hit").Add(float64(hits))
	c.lookups.WithLabelValues(cache, "miss").Add(float64(misses))
}

// MetricSummary is one gathered metric flattened for display.
// For histograms Count is the sample count and Value the sample sum.
type MetricSummary struct {
	Name   string
	Labels string
	Type   string
	Count  uint64
	Value  float64
}

// Summarize gathers g and flattens every metric into a MetricSummary,
// sorted by name and labels.
func Summarize(g prometheus.Gatherer) ([]MetricSummary, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []MetricSummary
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			s := MetricSummary{
				Name:   mf.GetName(),
				Labels: formatLabels(m.GetLabel()),
				Type:   strings.ToLower(mf.GetType().String()),
			}

			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				s.Count = 1
				s.Value = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				s.Count = 1
				s.Value = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				s.Count = m.GetHistogram().GetSampleCount()
				s.Value = m.GetHistogram().GetSampleSum()
			case dto.MetricType_SUMMARY:
				s.Count = m.GetSummary().GetSampleCount()
				s.Value = m.GetSummary().GetSampleSum()
			default:
				s.Value = m.GetUntyped().GetValue()
			}

			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Labels < out[j].Labels
	})
	return out, nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}
	return strings.Join(parts, ",")
}
