package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	AppointmentWritesTotal *prometheus.CounterVec
	SellerCacheLookups     *prometheus.CounterVec
	EventPublishFailures   prometheus.Counter
}

func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		AppointmentWritesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "appointments",
			Name:      "writes_total",
			Help:      "Appointment writes by operation and outcome (ok or rejection kind).",
		}, []string{"op", "outcome"}),

		SellerCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sellers",
			Name:      "cache_lookups_total",
			Help:      "Seller existence lookups by cache result (hit, miss, error).",
		}, []string{"result"}),

		EventPublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "publish_failures_total",
			Help:      "Appointment change events that could not be published.",
		}),
	}
}

func (c *Collector) RecordWrite(op, outcome string) {
	c.AppointmentWritesTotal.WithLabelValues(op, outcome).Inc()
}

func (c *Collector) RecordSellerLookup(result string) {
	c.SellerCacheLookups.WithLabelValues(result).Inc()
}

func (c *Collector) RecordPublishFailure() {
	c.EventPublishFailures.Inc()
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
