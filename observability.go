package ecs

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// StageSummary captures execution metadata for one stage run, the unit an
// Observer is told about once every system in the stage has either run or
// been skipped.
type StageSummary struct {
	Stage           Label
	Tick            uint64
	Duration        time.Duration
	SystemsTotal    int
	SystemsExecuted int
	SystemsSkipped  int
	Err             error
}

// Observer receives a summary after every stage completes.
type Observer interface {
	StageCompleted(summary StageSummary)
}

type noopObserver struct{}

func (noopObserver) StageCompleted(StageSummary) {}

type compositeObserver struct {
	observers []Observer
}

func (c compositeObserver) StageCompleted(summary StageSummary) {
	for _, observer := range c.observers {
		observer.StageCompleted(summary)
	}
}

// ObservationSettings toggles the observer chain a Scheduler reports to.
type ObservationSettings struct {
	EnableStructuredLogging bool
	Logger                  *zerolog.Logger
	EnablePrometheus        bool
	PrometheusCollector     *PrometheusStageCollector
	Observer                Observer
}

// buildObserverChain assembles the configured observers into a single
// fan-out Observer, adapted from the source scheduler's work-group observer
// chain but retargeted at stage summaries and backed by real zerolog and
// prometheus/client_golang instrumentation instead of hand-rolled exporters.
func buildObserverChain(logger zerolog.Logger, cfg ObservationSettings) Observer {
	var observers []Observer

	if cfg.Observer != nil {
		observers = append(observers, cfg.Observer)
	}

	if cfg.EnableStructuredLogging {
		l := logger
		if cfg.Logger != nil {
			l = *cfg.Logger
		}
		observers = append(observers, loggingObserver{logger: l})
	}

	if cfg.EnablePrometheus {
		collector := cfg.PrometheusCollector
		if collector == nil {
			collector = NewPrometheusStageCollector(nil)
		}
		observers = append(observers, collector)
	}

	switch len(observers) {
	case 0:
		return noopObserver{}
	case 1:
		return observers[0]
	default:
		return compositeObserver{observers: observers}
	}
}

type loggingObserver struct {
	logger zerolog.Logger
}

func (o loggingObserver) StageCompleted(summary StageSummary) {
	event := o.logger.Info()
	if summary.Err != nil {
		event = o.logger.Error().Err(summary.Err)
	}
	event.
		Str("stage", summary.Stage.Name).
		Uint64("tick", summary.Tick).
		Dur("duration", summary.Duration).
		Int("systems_total", summary.SystemsTotal).
		Int("systems_executed", summary.SystemsExecuted).
		Int("systems_skipped", summary.SystemsSkipped).
		Msg("stage completed")
}

// PrometheusStageCollector exposes stage execution metrics through the
// prometheus registry it is constructed with, grounded on the metrics collector used
// elsewhere in the surrounding service stack (gauge/counter/histogram vecs
// registered once, updated per observation, served via promhttp.Handler).
type PrometheusStageCollector struct {
	registerer prometheus.Registerer

	duration *prometheus.HistogramVec
	executed *prometheus.CounterVec
	skipped  *prometheus.CounterVec
	errors   *prometheus.CounterVec

	once sync.Once
}

// NewPrometheusStageCollector constructs a collector registered against reg,
// or the default global registry when reg is nil.
func NewPrometheusStageCollector(reg prometheus.Registerer) *PrometheusStageCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &PrometheusStageCollector{
		registerer: reg,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ecs_stage_duration_seconds",
			Help:    "Stage execution duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
		executed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecs_stage_systems_executed_total",
			Help: "Systems executed per stage.",
		}, []string{"stage"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecs_stage_systems_skipped_total",
			Help: "Systems skipped per stage.",
		}, []string{"stage"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ecs_stage_errors_total",
			Help: "Stage error count.",
		}, []string{"stage"}),
	}
	c.once.Do(func() {
		reg.MustRegister(c.duration, c.executed, c.skipped, c.errors)
	})
	return c
}

func (c *PrometheusStageCollector) StageCompleted(summary StageSummary) {
	label := prometheus.Labels{"stage": summary.Stage.Name}
	c.duration.With(label).Observe(summary.Duration.Seconds())
	c.executed.With(label).Add(float64(summary.SystemsExecuted))
	c.skipped.With(label).Add(float64(summary.SystemsSkipped))
	if summary.Err != nil {
		c.errors.With(label).Inc()
	}
}
