// Package metrics provides an optional Prometheus view of a pool's
// counters. The dependency points from here to the pool, never the other
// way: the concurrency core stays free of instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bshoshany/thread-pool-sub000/pkg/pool"
)

// PoolCollector implements prometheus.Collector over a pool's point-in-time
// counters. Register it with any prometheus.Registerer; each scrape reads
// the counters fresh.
type PoolCollector struct {
	pool *pool.Pool

	tasksQueued       *prometheus.Desc
	tasksRunning      *prometheus.Desc
	workersConfigured *prometheus.Desc
	workersAlive      *prometheus.Desc
	paused            *prometheus.Desc
}

// NewPoolCollector creates a collector for p. An empty namespace defaults
// to "threadpool".
func NewPoolCollector(p *pool.Pool, namespace string) *PoolCollector {
	if namespace == "" {
		namespace = "threadpool"
	}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}

	return &PoolCollector{
		pool:              p,
		tasksQueued:       desc("tasks_queued", "Number of tasks waiting in the queue."),
		tasksRunning:      desc("tasks_running", "Number of tasks currently executing."),
		workersConfigured: desc("workers_configured", "Configured worker count of the current generation."),
		workersAlive:      desc("workers_alive", "Workers not lost to catastrophic failures."),
		paused:            desc("paused", "Whether the pool is paused (1) or dispatching (0)."),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.tasksQueued
	ch <- c.tasksRunning
	ch <- c.workersConfigured
	ch <- c.workersAlive
	ch <- c.paused
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.tasksQueued, prometheus.GaugeValue, float64(c.pool.QueuedTasks()))
	ch <- prometheus.MustNewConstMetric(c.tasksRunning, prometheus.GaugeValue, float64(c.pool.RunningTasks()))
	ch <- prometheus.MustNewConstMetric(c.workersConfigured, prometheus.GaugeValue, float64(c.pool.NumWorkers()))
	ch <- prometheus.MustNewConstMetric(c.workersAlive, prometheus.GaugeValue, float64(c.pool.NumAlive()))

	var paused float64
	if c.pool.IsPaused() {
		paused = 1
	}
	ch <- prometheus.MustNewConstMetric(c.paused, prometheus.GaugeValue, paused)
}
