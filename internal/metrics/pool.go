package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// poolStater is satisfied by *pgxpool.Pool.
type poolStater interface {
	Stat() *pgxpool.Stat
}

// PoolCollector reports connection pool statistics on every scrape.
type PoolCollector struct {
	pool poolStater

	acquired  *prometheus.Desc
	idle      *prometheus.Desc
	total     *prometheus.Desc
	max       *prometheus.Desc
	acquires  *prometheus.Desc
	waitTotal *prometheus.Desc
}

// NewPoolCollector creates a collector for pool. Register it once.
func NewPoolCollector(pool poolStater) *PoolCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "db_pool", name), help, nil, nil)
	}
	return &PoolCollector{
		pool:      pool,
		acquired:  desc("acquired_conns", "Connections currently checked out"),
		idle:      desc("idle_conns", "Idle connections"),
		total:     desc("total_conns", "Open connections"),
		max:       desc("max_conns", "Configured maximum connections"),
		acquires:  desc("acquires_total", "Successful connection acquisitions"),
		waitTotal: desc("acquire_wait_seconds_total", "Time spent waiting for a connection"),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.acquired
	ch <- c.idle
	ch <- c.total
	ch <- c.max
	ch <- c.acquires
	ch <- c.waitTotal
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.pool.Stat()
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.GaugeValue, float64(s.AcquiredConns()))
	ch <- prometheus.MustNewConstMetric(c.idle, prometheus.GaugeValue, float64(s.IdleConns()))
	ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, float64(s.TotalConns()))
	ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, float64(s.MaxConns()))
	ch <- prometheus.MustNewConstMetric(c.acquires, prometheus.CounterValue, float64(s.AcquireCount()))
	ch <- prometheus.MustNewConstMetric(c.waitTotal, prometheus.CounterValue, s.AcquireDuration().Seconds())
}
