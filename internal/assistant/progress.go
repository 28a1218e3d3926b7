package assistant

import (
	"fmt"
	"io"
)

// ProgressEvent represents a single progress update of an assistant call.
type ProgressEvent struct {
	Type      string `json:"type"`                // "info", "done", "error"
	Assistant string `json:"assistant,omitempty"` // notes, code or roadmap
	Message   string `json:"message,omitempty"`   // human-readable message
	Result    any    `json:"result,omitempty"`    // final result (for "done" type)
}

// ProgressEmitter receives progress events during an assistant call.
type ProgressEmitter interface {
	Emit(event ProgressEvent)
}

// TextEmitter formats progress events as human-readable text for CLI output.
type TextEmitter struct {
	W io.Writer
}

// Emit writes a formatted progress line to the underlying writer.
func (e *TextEmitter) Emit(ev ProgressEvent) {
	switch ev.Type {
	case "info":
		fmt.Fprintf(e.W, "  %s\n", ev.Message)
	case "error":
		fmt.Fprintf(e.W, "Error: %s\n", ev.Message)
	}
}

type discard struct{}

func (discard) Emit(ProgressEvent) {}

// Discard drops every event.
var Discard ProgressEmitter = discard{}
