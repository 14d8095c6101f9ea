// Package observability wires builder lifecycle hooks into Prometheus
// collectors.
package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cardwright/cardwright/pkg/domain"
)

// Metrics holds the Prometheus collectors for card construction and
// translation activity.
type Metrics struct {
	nodesAdded          *prometheus.CounterVec
	cursorMoves         *prometheus.CounterVec
	translationBatches  prometheus.Counter
	translationFailures prometheus.Counter
	translationSize     prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		nodesAdded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardwright_nodes_added_total",
				Help: "Total number of nodes accepted into card trees",
			},
			[]string{"kind", "container"},
		),
		cursorMoves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardwright_cursor_moves_total",
				Help: "Total number of cursor movements",
			},
			[]string{"cause"},
		),
		translationBatches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cardwright_translation_batches_total",
				Help: "Total number of translation passes",
			},
		),
		translationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cardwright_translation_failures_total",
				Help: "Total number of failed translation passes",
			},
		),
		translationSize: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cardwright_translation_batch_size",
				Help:    "Number of strings per translation batch",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
	reg.MustRegister(
		m.nodesAdded,
		m.cursorMoves,
		m.translationBatches,
		m.translationFailures,
		m.translationSize,
	)
	return m
}

// Hooks returns lifecycle hooks feeding the collectors. Pass the result to
// builder.WithLifecycleHooks.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeAdded: func(_ context.Context, e *domain.NodeEvent) {
			m.nodesAdded.WithLabelValues(e.Kind, e.Container).Inc()
		},
		OnCursorMoved: func(_ context.Context, e *domain.CursorEvent) {
			m.cursorMoves.WithLabelValues(e.Cause).Inc()
		},
		OnTranslate: func(_ context.Context, e *domain.TranslateEvent) {
			m.translationBatches.Inc()
			m.translationSize.Observe(float64(e.BatchSize))
			if e.IsError {
				m.translationFailures.Inc()
			}
		},
	}
}
