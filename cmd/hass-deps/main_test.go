package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/adapters/config"
	"go.trai.ch/hassdeps/internal/adapters/stamp"
	"go.trai.ch/hassdeps/internal/adapters/telemetry"
	"go.trai.ch/hassdeps/internal/app"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func staticProvider(c *app.Components, cleaned *bool) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return c, func() { *cleaned = true }, nil
	}
}

func newComponents(t *testing.T) (*app.Components, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	afs := afero.NewOsFs()
	log := mocks.NewMockLogger(ctrl)
	a := app.New(config.NewStore(afs), mocks.NewMockReconciler(ctrl), stamp.NewStore(afs), log)
	return app.NewComponents(a, log, telemetry.NewNoOp(), domain.DefaultSettings()), log
}

func TestRun_Init(t *testing.T) {
	dir := t.TempDir()
	components, log := newComponents(t)
	log.EXPECT().Info("Created " + filepath.Join(dir, domain.DependenciesFileName))

	var cleaned bool
	code := run(context.Background(), []string{"init", "--config-dir", dir}, &bytes.Buffer{}, staticProvider(components, &cleaned))

	assert.Equal(t, 0, code)
	assert.True(t, cleaned)
	_, err := os.Stat(filepath.Join(dir, domain.DependenciesFileName))
	require.NoError(t, err)
}

func TestRun_CommandError(t *testing.T) {
	dir := t.TempDir()
	components, log := newComponents(t)
	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrDependenciesFileNotFound)
	})

	var cleaned bool
	code := run(context.Background(), []string{"install", "--config-dir", dir}, &bytes.Buffer{}, staticProvider(components, &cleaned))

	assert.Equal(t, 1, code)
	assert.True(t, cleaned)
}

func TestRun_ProviderError(t *testing.T) {
	var stderr bytes.Buffer
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("invalid settings")
	}

	code := run(context.Background(), []string{"status"}, &stderr, provider)

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: invalid settings\n", stderr.String())
}
