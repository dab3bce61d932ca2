// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package reconciler

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/openstack-charmers/neutron-ha-monitor/core/neutron"
)

const metricsNamespace = "neutron_ha_monitor"

// Collector is a prometheus.Collector that collects metrics about
// reconciliation cycles.
type Collector struct {
	cycles          prometheus.Counter
	cycleFailures   prometheus.Counter
	cycleDuration   prometheus.Histogram
	designatedActor prometheus.Gauge
	deadAgents      *prometheus.GaugeVec
	orphans         *prometheus.GaugeVec
	reassignments   *prometheus.CounterVec
	cleanups        *prometheus.CounterVec
	serviceRestarts *prometheus.CounterVec
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		cycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cycles_total",
				Help:      "The number of reconciliation cycles run.",
			},
		),
		cycleFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cycle_failures_total",
				Help:      "The number of reconciliation cycles that recorded errors.",
			},
		),
		cycleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cycle_duration_seconds",
				Help:      "The time taken by a reconciliation cycle.",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
			},
		),
		designatedActor: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "designated_actor",
				Help:      "1 if this host was the designated actor in the last cycle that asked.",
			},
		),
		deadAgents: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "dead_agents",
				Help:      "The number of dead agents seen in the last cycle.",
			}, []string{"kind"},
		),
		orphans: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "orphaned_resources",
				Help:      "The number of resources hosted by dead agents in the last cycle.",
			}, []string{"kind"},
		),
		reassignments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "reassignments_total",
				Help:      "The number of resource reassignments attempted.",
			}, []string{"kind", "result"},
		),
		cleanups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "namespace_cleanups_total",
				Help:      "The number of namespaces processed by cleanups.",
			}, []string{"kind", "result"},
		),
		serviceRestarts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "service_restarts_total",
				Help:      "The number of local service restarts.",
			}, []string{"service", "result"},
		),
	}
}

// Observe records the outcome of a cycle.
func (c *Collector) Observe(report Report) {
	c.cycles.Inc()
	if report.Failed() {
		c.cycleFailures.Inc()
	}
	c.cycleDuration.Observe(report.Duration.Seconds())
	if report.DesignatedChecked {
		if report.Designated {
			c.designatedActor.Set(1)
		} else {
			c.designatedActor.Set(0)
		}
	}

	for _, kind := range neutron.ReschedulableKinds {
		kr, ok := report.Kind(kind)
		if !ok {
			continue
		}
		c.deadAgents.WithLabelValues(string(kind)).Set(float64(len(kr.Dead)))
		c.orphans.WithLabelValues(string(kind)).Set(float64(kr.Orphans.Len()))
	}
	for _, m := range report.Moves {
		c.reassignments.WithLabelValues(string(m.Kind), result(m.Err)).Inc()
	}
	for _, cleanup := range report.Cleanups {
		kind := string(cleanup.Kind)
		c.cleanups.WithLabelValues(kind, "removed").Add(float64(len(cleanup.Removed)))
		c.cleanups.WithLabelValues(kind, "skipped").Add(float64(len(cleanup.Skipped)))
		c.cleanups.WithLabelValues(kind, "failed").Add(float64(len(cleanup.Failed)))
	}
	for _, r := range report.Restarts {
		c.serviceRestarts.WithLabelValues(r.Service, result(r.Err)).Inc()
	}
}

func result(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.cycles.Describe(ch)
	c.cycleFailures.Describe(ch)
	c.cycleDuration.Describe(ch)
	c.designatedActor.Describe(ch)
	c.deadAgents.Describe(ch)
	c.orphans.Describe(ch)
	c.reassignments.Describe(ch)
	c.cleanups.Describe(ch)
	c.serviceRestarts.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.cycles.Collect(ch)
	c.cycleFailures.Collect(ch)
	c.cycleDuration.Collect(ch)
	c.designatedActor.Collect(ch)
	c.deadAgents.Collect(ch)
	c.orphans.Collect(ch)
	c.reassignments.Collect(ch)
	c.cleanups.Collect(ch)
	c.serviceRestarts.Collect(ch)
}
