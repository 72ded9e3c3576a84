package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/adapters/telemetry"
)

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()
	ctx := context.Background()

	got, vertex := rec.Record(ctx, "widget")
	assert.Equal(t, ctx, got)
	require.NotNil(t, vertex)

	n, err := vertex.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	vertex.Log("ignored")
	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	assert.NoError(t, rec.Close())
}
