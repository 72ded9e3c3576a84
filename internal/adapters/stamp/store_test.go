package stamp_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/adapters/stamp"
	"go.trai.ch/hassdeps/internal/core/domain"
)

func TestStore_PutGet(t *testing.T) {
	afs := afero.NewMemMapFs()
	store := stamp.NewStore(afs)

	dir := "/config/custom_components/widget"
	require.NoError(t, store.Put(dir, domain.PackageInfo{Version: "v1.2.0"}))

	got, err := store.Get(dir)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v1.2.0", got.Version)

	raw, err := afero.ReadFile(afs, "/config/custom_components/widget/.hass-deps")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version": "v1.2.0"}`, string(raw))
}

func TestStore_GetMissing(t *testing.T) {
	store := stamp.NewStore(afero.NewMemMapFs())

	got, err := store.Get("/config/www/community/card")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	afs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(afs, "/unit/.hass-deps", []byte("{not json"), 0o644))

	_, err := stamp.NewStore(afs).Get("/unit")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageInfoReadFailed.Error())
}

func TestStore_PutOverwrites(t *testing.T) {
	store := stamp.NewStore(afero.NewMemMapFs())

	require.NoError(t, store.Put("/unit", domain.PackageInfo{Version: "a"}))
	require.NoError(t, store.Put("/unit", domain.PackageInfo{Version: "b"}))

	got, err := store.Get("/unit")
	require.NoError(t, err)
	assert.Equal(t, "b", got.Version)
}
