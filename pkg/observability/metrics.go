package observability

import (
	"context"

	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the session collectors.
type Metrics struct {
	Commands *prometheus.CounterVec
	PixelsOn prometheus.Gauge
	Redraws  prometheus.Counter
	Replays  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipcli_commands_total",
				Help: "Total number of command lines processed",
			},
			[]string{"command", "result"},
		),
		PixelsOn: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ipcli_pixels_on",
			Help: "Number of pixels currently on",
		}),
		Redraws: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ipcli_canvas_redraws_total",
			Help: "Total number of times the canvas was drawn",
		}),
		Replays: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipcli_replayed_commands_total",
				Help: "Total number of commands run from scripts",
			},
			[]string{"outcome"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Commands, m.PixelsOn, m.Redraws, m.Replays)
	}
	return m
}

// Hooks returns lifecycle callbacks that update the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			name := e.Command
			if name == "" {
				name = "unknown"
			}
			m.Commands.WithLabelValues(name, e.Result).Inc()
			m.PixelsOn.Set(float64(e.PixelsOn))
		},
		OnRedraw: func(_ context.Context, e *domain.RedrawEvent) {
			m.Redraws.Inc()
			m.PixelsOn.Set(float64(e.PixelsOn))
		},
		OnReplay: func(_ context.Context, e *domain.ReplayEvent) {
			if e.Type != domain.EventReplayEnd {
				return
			}
			m.Replays.WithLabelValues("ok").Add(float64(e.Commands - e.Errors))
			m.Replays.WithLabelValues("error").Add(float64(e.Errors))
		},
	}
}
