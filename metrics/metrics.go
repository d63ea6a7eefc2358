package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "mrgnd"

// Lookup results of the registry.
const (
	LookupFound    = "found"
	LookupNotFound = "not_found"
)

// Recorder receives deployment and registry events.
type Recorder interface {
	Instantiated(env, module string)
	InstantiationFailed(env, module string)
	Lookup(env, result string)
	DeployDuration(env string, d time.Duration)
}

type PromIndicators struct {
	instantiations       *prometheus.CounterVec
	instantiationFailures *prometheus.CounterVec
	registryLookups      *prometheus.CounterVec
	deployDuration       *prometheus.HistogramVec
}

var _ Recorder = (*PromIndicators)(nil)

func NewPromIndicators(reg prometheus.Registerer) *PromIndicators {
	return &PromIndicators{
		instantiations: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "instantiations_total",
				Help:      "Contracts instantiated, by environment and module",
			},
			[]string{"environment", "module"},
		),
		instantiationFailures: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "instantiation_failures_total",
				Help:      "Contract instantiations that failed or were blocked by a missing address",
			},
			[]string{"environment", "module"},
		),
		registryLookups: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "registry_lookups_total",
				Help:      "Registry lookups by environment name and result",
			},
			[]string{"environment", "result"},
		),
		deployDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "deploy_duration_seconds",
				Help:      "Duration of a full deployment of the four contracts",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"environment"},
		),
	}
}

func (p *PromIndicators) Instantiated(env, module string) {
	p.instantiations.WithLabelValues(env, module).Inc()
}

func (p *PromIndicators) InstantiationFailed(env, module string) {
	p.instantiationFailures.WithLabelValues(env, module).Inc()
}

// Lookup counts a registry lookup. Names that are not environments are
// reported under one label so arbitrary input cannot grow the series.
func (p *PromIndicators) Lookup(env, result string) {
	if result == LookupNotFound {
		env = "unknown"
	}
	p.registryLookups.WithLabelValues(env, result).Inc()
}

func (p *PromIndicators) DeployDuration(env string, d time.Duration) {
	p.deployDuration.WithLabelValues(env).Observe(d.Seconds())
}

// Noop discards every event.
type Noop struct{}

var _ Recorder = Noop{}

func (Noop) Instantiated(string, string)          {}
func (Noop) InstantiationFailed(string, string)   {}
func (Noop) Lookup(string, string)                {}
func (Noop) DeployDuration(string, time.Duration) {}
