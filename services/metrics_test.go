package services

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := NewPipelineMetrics(registry)
	require.NoError(t, err)

	metrics.ObserveAnalysis(OutcomeRecognized)
	metrics.ObserveAnalysis(OutcomeFallback)
	metrics.ObserveAnalysis(OutcomeFallback)
	metrics.ObserveGeneration(3)
	metrics.ObserveGeneration(0)
	metrics.WardrobeItemAdded()
	metrics.WardrobeItemAdded()
	metrics.WardrobeItemRemoved()

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.analysesTotal.WithLabelValues("recognized")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.analysesTotal.WithLabelValues("fallback")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.generationsTotal.WithLabelValues("fallback")))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.outfitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.wardrobeItems))
}

func TestPipelineMetricsDuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := NewPipelineMetrics(registry)
	require.NoError(t, err)

	_, err = NewPipelineMetrics(registry)
	assert.Error(t, err)
}

func TestNilPipelineMetrics(t *testing.T) {
	var metrics *PipelineMetrics
	assert.NotPanics(t, func() {
		metrics.ObserveAnalysis(OutcomeRecognized)
		metrics.ObserveGeneration(2)
		metrics.WardrobeItemAdded()
		metrics.WardrobeItemRemoved()
	})
}
