package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics counts how often the model answer was usable. A nil
// *PipelineMetrics records nothing.
type PipelineMetrics struct {
	analysesTotal    *prometheus.CounterVec
	generationsTotal *prometheus.CounterVec
	outfitsTotal     prometheus.Counter
	wardrobeItems    prometheus.Gauge
}

func NewPipelineMetrics(registry *prometheus.Registry) (*PipelineMetrics, error) {
	m := &PipelineMetrics{
		analysesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecostyle_clothing_analyses_total",
				Help: "Clothing image analyses by outcome",
			},
			[]string{"outcome"}, // recognized, fallback
		),
		generationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ecostyle_outfit_generations_total",
				Help: "Outfit generation requests by outcome",
			},
			[]string{"outcome"},
		),
		outfitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ecostyle_outfits_generated_total",
			Help: "Outfits returned to users",
		}),
		wardrobeItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ecostyle_wardrobe_items",
			Help: "Items held across all live sessions",
		}),
	}
	for _, collector := range []prometheus.Collector{m.analysesTotal, m.generationsTotal, m.outfitsTotal, m.wardrobeItems} {
		if err := registry.Register(collector); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PipelineMetrics) ObserveAnalysis(outcome Outcome) {
	if m == nil {
		return
	}
	m.analysesTotal.WithLabelValues(string(outcome)).Inc()
}

// ObserveGeneration treats an empty generation as a fallback.
func (m *PipelineMetrics) ObserveGeneration(outfitCount int) {
	if m == nil {
		return
	}
	outcome := OutcomeRecognized
	if outfitCount == 0 {
		outcome = OutcomeFallback
	}
	m.generationsTotal.WithLabelValues(string(outcome)).Inc()
	m.outfitsTotal.Add(float64(outfitCount))
}

func (m *PipelineMetrics) WardrobeItemAdded() {
	if m == nil {
		return
	}
	m.wardrobeItems.Inc()
}

// SessionRemoved drops the items of a deleted or expired session from the gauge.
func (m *PipelineMetrics) SessionRemoved(itemCount int) {
	if m == nil || itemCount == 0 {
		return
	}
	m.wardrobeItems.Sub(float64(itemCount))
}

func (m *PipelineMetrics) WardrobeItemRemoved() {
	if m == nil {
		return
	}
	m.wardrobeItems.Dec()
}
