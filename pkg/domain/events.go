package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommand     EventType = "command"
	EventRedraw      EventType = "redraw"
	EventReplayStart EventType = "replay_start"
	EventReplayEnd   EventType = "replay_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent describes one processed command line.
type CommandEvent struct {
	EventBase
	Line     string `json:"line"`
	Command  string `json:"command,omitempty"`
	Result   string `json:"result"`
	Accepted bool   `json:"accepted"`
	Changed  bool   `json:"changed"`
	Warning  string `json:"warning,omitempty"`
	PixelsOn int    `json:"pixels_on"`
	Replayed bool   `json:"replayed,omitempty"`
}

// RedrawEvent is fired each time the canvas is rendered to the host.
type RedrawEvent struct {
	EventBase
	Width    int `json:"width"`
	Height   int `json:"height"`
	PixelsOn int `json:"pixels_on"`
}

// ReplayEvent marks the start or the end of a script replay.
type ReplayEvent struct {
	EventBase
	Source   string `json:"source"`
	Commands int    `json:"commands"`
	Errors   int    `json:"errors"`
	Quit     bool   `json:"quit,omitempty"`
}

// LifecycleHooks defines callbacks for session observability.
type LifecycleHooks struct {
	OnCommand func(context.Context, *CommandEvent)
	OnRedraw  func(context.Context, *RedrawEvent)
	OnReplay  func(context.Context, *ReplayEvent)
}

// MergeHooks returns hooks that call every non-nil callback of each argument in order.
func MergeHooks(hooks ...LifecycleHooks) LifecycleHooks {
	var merged LifecycleHooks
	for _, h := range hooks {
		if h.OnCommand != nil {
			prev := merged.OnCommand
			merged.OnCommand = func(ctx context.Context, e *CommandEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnCommand(ctx, e)
			}
		}
		if h.OnRedraw != nil {
			prev := merged.OnRedraw
			merged.OnRedraw = func(ctx context.Context, e *RedrawEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnRedraw(ctx, e)
			}
		}
		if h.OnReplay != nil {
			prev := merged.OnReplay
			merged.OnReplay = func(ctx context.Context, e *ReplayEvent) {
				if prev != nil {
					prev(ctx, e)
				}
				h.OnReplay(ctx, e)
			}
		}
	}
	return merged
}
