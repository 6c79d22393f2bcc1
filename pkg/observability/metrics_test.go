package observability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/ipcli/pkg/domain"
	"github.com/aretw0/ipcli/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnCommand(ctx, &domain.CommandEvent{Command: "write", Result: "ok", PixelsOn: 1})
	hooks.OnCommand(ctx, &domain.CommandEvent{Command: "write", Result: "ok", PixelsOn: 2})
	hooks.OnCommand(ctx, &domain.CommandEvent{Result: "unrecognized", PixelsOn: 2})
	hooks.OnRedraw(ctx, &domain.RedrawEvent{PixelsOn: 7})
	hooks.OnReplay(ctx, &domain.ReplayEvent{EventBase: domain.EventBase{Type: domain.EventReplayStart}})
	hooks.OnReplay(ctx, &domain.ReplayEvent{EventBase: domain.EventBase{Type: domain.EventReplayEnd}, Commands: 5, Errors: 2})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("write", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("unknown", "unrecognized")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.PixelsOn))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Redraws))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Replays.WithLabelValues("ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Replays.WithLabelValues("error")))

	expected := `
# HELP ipcli_canvas_redraws_total Total number of times the canvas was drawn
# TYPE ipcli_canvas_redraws_total counter
ipcli_canvas_redraws_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "ipcli_canvas_redraws_total"))
}
