// Package telemetry provides recorders for per-dependency installation progress.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/hassdeps/internal/core/ports"
)

// NoOp is a ports.Telemetry that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns ctx unchanged and a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Log(string)        {}
func (noopVertex) Cached()           {}
func (noopVertex) Complete(error)    {}
