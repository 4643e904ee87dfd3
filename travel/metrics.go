package travel

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// travelMetrics counts reads flowing through the interception layer.
type travelMetrics struct {
	intercepted *prometheus.CounterVec // labels: entry
	passthrough *prometheus.CounterVec // labels: clock
	failures    *prometheus.CounterVec // labels: entry
}

var (
	metricsOnce sync.Once
	mtr         *travelMetrics
)

// metrics registers the counters on the default registry on first use; the
// layer may be linked into processes that never scrape them.
func metrics() *travelMetrics {
	metricsOnce.Do(func() {
		mtr = &travelMetrics{
			intercepted: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "timetravel",
				Name:      "intercepted_reads_total",
				Help:      "Wall-clock reads rewritten to the travel instant.",
			}, []string{"entry"}),
			passthrough: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "timetravel",
				Name:      "passthrough_reads_total",
				Help:      "Non-wall-clock reads returned untouched.",
			}, []string{"clock"}),
			failures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "timetravel",
				Name:      "genuine_failures_total",
				Help:      "Genuine failures propagated to the caller untouched.",
			}, []string{"entry"}),
		}
		prometheus.MustRegister(mtr.intercepted, mtr.passthrough, mtr.failures)
	})
	return mtr
}
