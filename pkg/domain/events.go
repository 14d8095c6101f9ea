package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeAdded   EventType = "node_added"
	EventCursorMoved EventType = "cursor_moved"
	EventTranslate   EventType = "translate"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	CardID    string    `json:"card_id"`
}

// NodeEvent describes a node being accepted into the tree.
type NodeEvent struct {
	EventBase
	Kind       string `json:"kind"`
	Container  string `json:"container"` // "items" or "actions"
	Composite  bool   `json:"composite,omitempty"`
	TargetKind string `json:"target_kind"`
}

// CursorEvent describes a cursor movement (recursion-on-add, ascend, reset,
// or checkpoint restore).
type CursorEvent struct {
	EventBase
	Kind  string `json:"kind"`  // kind of the node the cursor now designates
	Cause string `json:"cause"` // "add", "up", "top", "load"
}

// TranslateEvent describes one translation pass over the tree.
type TranslateEvent struct {
	EventBase
	Language  string `json:"language"`
	BatchSize int    `json:"batch_size"`
	IsError   bool   `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for builder observability.
type LifecycleHooks struct {
	OnNodeAdded   func(context.Context, *NodeEvent)
	OnCursorMoved func(context.Context, *CursorEvent)
	OnTranslate   func(context.Context, *TranslateEvent)
}
