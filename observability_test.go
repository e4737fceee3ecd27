package ecs

import (
	"io"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestPrometheusStageCollectorRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheusStageCollector(reg)

	collector.StageCompleted(StageSummary{
		Stage:           L("update"),
		Tick:            42,
		Duration:        5 * time.Millisecond,
		SystemsTotal:    2,
		SystemsExecuted: 2,
	})

	families, err := reg.Gather()
	require.NoError(t, err)

	var sawDuration, sawExecuted bool
	for _, fam := range families {
		switch fam.GetName() {
		case "ecs_stage_duration_seconds":
			sawDuration = true
		case "ecs_stage_systems_executed_total":
			sawExecuted = true
			require.Equal(t, float64(2), sumCounter(fam))
		}
	}
	require.True(t, sawDuration, "expected duration histogram to be registered")
	require.True(t, sawExecuted, "expected executed counter to be registered")
}

func sumCounter(fam *dto.MetricFamily) float64 {
	var total float64
	for _, m := range fam.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	return total
}

func TestBuildObserverChainComposesObservers(t *testing.T) {
	var calls int
	chain := buildObserverChain(zerolog.New(io.Discard), ObservationSettings{
		Observer: observerFunc(func(StageSummary) { calls++ }),
	})
	chain.StageCompleted(StageSummary{Stage: L("startup")})
	require.Equal(t, 1, calls)
}

type observerFunc func(StageSummary)

func (f observerFunc) StageCompleted(s StageSummary) { f(s) }
