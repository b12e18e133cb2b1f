package telemetry

import (
	"mediadex/config"
	"mediadex/internal/core"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric holds every exported counter/histogram. All fields are nil when the
// metric exporter is disabled; callers must nil-check before Inc/Observe.
type Metric struct {
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	CommandSuccessTotal *prometheus.CounterVec
	CommandFailTotal    *prometheus.CounterVec
	SearchTenantsTotal  *prometheus.CounterVec
	GateSkipTotal       *prometheus.CounterVec
	config              *config.Configuration
}

func NewMetric(config *config.Configuration) *Metric {
	if config == nil || !config.Telemetry.Metric.Enabled {
		return &Metric{}
	}
	buckets := prometheus.DefBuckets
	if len(config.Telemetry.Metric.Buckets) > 0 {
		buckets = config.Telemetry.Metric.Buckets
	}
	return &Metric{
		config: config,
		HttpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricHttpRequestsTotal),
				Help: "Total received API requests",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		HttpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    config.App.Name + "_" + string(core.MetricHttpRequestDuration),
				Help:    "Command handling duration (seconds)",
				Buckets: buckets,
			},
			labelNames(core.MetricLabelEndpoint),
		),
		CommandSuccessTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCommandSuccessTotal),
				Help: "Commands that completed with an in-band success",
			},
			labelNames(core.MetricLabelEndpoint, core.MetricLabelStatus),
		),
		CommandFailTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricCommandFailTotal),
				Help: "Commands rejected with a typed error",
			},
			labelNames(core.MetricLabelReason),
		),
		SearchTenantsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricSearchTenantsTotal),
				Help: "Tenant stores consulted during search fan-out",
			},
			labelNames(core.MetricLabelStatus),
		),
		GateSkipTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: config.App.Name + "_" + string(core.MetricGateSkipTotal),
				Help: "Tenants skipped because the membership gate said no, errored or timed out",
			},
			labelNames(core.MetricLabelReason),
		),
	}
}

func labelNames(labels ...core.MetricLabelName) []string {
	strs := make([]string, len(labels))
	for i, l := range labels {
		strs[i] = string(l)
	}
	return strs
}
