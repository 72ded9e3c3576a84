package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of each dependency installation.
type Telemetry interface {
	// Record starts a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for output associated with the vertex.
	Stdout() io.Writer

	// Log records a message against the vertex.
	Log(msg string)

	// Cached marks the vertex as satisfied without doing any work.
	Cached()

	// Complete marks the vertex as finished, successfully when err is nil.
	Complete(err error)
}
