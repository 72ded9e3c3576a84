package config_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/adapters/config"
	"go.trai.ch/hassdeps/internal/core/domain"
)

const root = "/config"

func newStore(t *testing.T, files map[string]string) (*config.Store, afero.Fs) {
	t.Helper()
	afs := afero.NewMemMapFs()
	require.NoError(t, afs.MkdirAll(root, 0o750))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(afs, root+"/"+name, []byte(content), 0o644))
	}
	return config.NewStore(afs), afs
}

func TestLoadDependencies(t *testing.T) {
	store, _ := newStore(t, map[string]string{
		"hass-deps.yaml": `dependencies:
  - https://github.com/acme/widget
  - source: https://github.com/acme/card
    root_is_custom_components: true
    include: [foo]
    assets: [dist/card.js]
  - source: https://github.com/acme/empty
    include: []
`,
	})

	deps, err := store.LoadDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://github.com/acme/widget",
		"https://github.com/acme/card",
		"https://github.com/acme/empty",
	}, deps.Keys())

	widget, ok := deps.Get("https://github.com/acme/widget")
	require.True(t, ok)
	assert.Equal(t, domain.NewDependency("https://github.com/acme/widget"), widget)

	card, _ := deps.Get("https://github.com/acme/card")
	assert.True(t, card.RootIsCustomComponents)
	assert.Equal(t, []string{"foo"}, card.Include)
	assert.Equal(t, []string{"dist/card.js"}, card.Assets)

	empty, _ := deps.Get("https://github.com/acme/empty")
	assert.NotNil(t, empty.Include)
	assert.Empty(t, empty.Include)
	assert.Nil(t, empty.Assets)
}

func TestLoadDependencies_Empty(t *testing.T) {
	for name, content := range map[string]string{
		"empty file":      "",
		"null list":       "dependencies:\n",
		"empty flow list": "dependencies: []\n",
	} {
		t.Run(name, func(t *testing.T) {
			store, _ := newStore(t, map[string]string{"hass-deps.yaml": content})
			deps, err := store.LoadDependencies(root)
			require.NoError(t, err)
			assert.Equal(t, 0, deps.Len())
		})
	}
}

func TestLoadDependencies_Missing(t *testing.T) {
	store, _ := newStore(t, nil)

	_, err := store.LoadDependencies(root)
	require.ErrorIs(t, err, domain.ErrDependenciesFileNotFound)

	ok, err := store.DependenciesExist(root)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadDependencies_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "object without source",
			content: "dependencies:\n  - include: [foo]\n",
			want:    domain.ErrInvalidDependency,
		},
		{
			name:    "nested list entry",
			content: "dependencies:\n  - [a, b]\n",
			want:    domain.ErrInvalidDependency,
		},
		{
			name:    "malformed yaml",
			content: "dependencies: [\n",
			want:    domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newStore(t, map[string]string{"hass-deps.yaml": tt.content})
			_, err := store.LoadDependencies(root)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestWriteDependencies_MinimalForm(t *testing.T) {
	store, afs := newStore(t, nil)

	deps := domain.NewOrderedMap[domain.Dependency]()
	deps.Set("https://github.com/acme/widget", domain.NewDependency("https://github.com/acme/widget"))
	deps.Set("https://github.com/acme/card", domain.Dependency{
		Source:                 "https://github.com/acme/card",
		RootIsCustomComponents: true,
		Include:                []string{"foo"},
	})
	deps.Set("https://github.com/acme/bundle", domain.Dependency{
		Source: "https://github.com/acme/bundle",
		Assets: []string{},
	})

	require.NoError(t, store.WriteDependencies(root, deps))

	raw, err := afero.ReadFile(afs, "/config/hass-deps.yaml")
	require.NoError(t, err)

	assert.YAMLEq(t, `dependencies:
  - https://github.com/acme/widget
  - source: https://github.com/acme/card
    root_is_custom_components: true
    include: [foo]
  - source: https://github.com/acme/bundle
    assets: []
`, string(raw))
	assert.NotContains(t, string(raw), "root_is_custom_components: false")

	loaded, err := store.LoadDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, deps.Keys(), loaded.Keys())
	for source, want := range deps.All() {
		got, ok := loaded.Get(source)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestWriteDependencies_EmptyCollection(t *testing.T) {
	store, afs := newStore(t, nil)

	require.NoError(t, store.WriteDependencies(root, domain.NewOrderedMap[domain.Dependency]()))

	raw, err := afero.ReadFile(afs, "/config/hass-deps.yaml")
	require.NoError(t, err)
	assert.YAMLEq(t, "dependencies: []\n", string(raw))

	ok, err := store.DependenciesExist(root)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoadLockedDependencies(t *testing.T) {
	store, _ := newStore(t, map[string]string{
		"hass-deps.lock": `https://github.com/acme/widget:
  version: v1.2.0
  type: core
  components:
    - widget
https://github.com/acme/card:
  version: v3.0.1
  type: lovelace
  is_release: true
https://github.com/acme/nothing:
  version: 0.1-2-gabc1234
  type: core
  components: []
`,
	})

	locks, err := store.LoadLockedDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://github.com/acme/widget",
		"https://github.com/acme/card",
		"https://github.com/acme/nothing",
	}, locks.Keys())

	widget, _ := locks.Get("https://github.com/acme/widget")
	assert.Equal(t, domain.LockedDependency{
		Source:     "https://github.com/acme/widget",
		Version:    "v1.2.0",
		Type:       domain.DependencyTypeCore,
		Components: []string{"widget"},
	}, widget)

	card, _ := locks.Get("https://github.com/acme/card")
	assert.True(t, card.IsRelease)
	assert.Nil(t, card.Components)

	nothing, _ := locks.Get("https://github.com/acme/nothing")
	assert.NotNil(t, nothing.Components)
	assert.Empty(t, nothing.Components)
}

func TestLoadLockedDependencies_Missing(t *testing.T) {
	store, _ := newStore(t, nil)

	locks, err := store.LoadLockedDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, 0, locks.Len())
}

func TestLoadLockedDependencies_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing version": "https://github.com/acme/widget:\n  type: core\n",
		"unknown type":    "https://github.com/acme/widget:\n  version: v1\n  type: plugin\n",
		"not a mapping":   "- https://github.com/acme/widget\n",
		"malformed":       "https://github.com/acme/widget: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			store, _ := newStore(t, map[string]string{"hass-deps.lock": content})
			_, err := store.LoadLockedDependencies(root)
			require.ErrorIs(t, err, domain.ErrLockParseFailed)
		})
	}
}

func TestWriteLockedDependencies_RoundTrip(t *testing.T) {
	store, afs := newStore(t, nil)

	locks := domain.NewOrderedMap[domain.LockedDependency]()
	locks.Set("https://github.com/acme/widget", domain.LockedDependency{
		Source:     "https://github.com/acme/widget",
		Version:    "1.0",
		Type:       domain.DependencyTypeCore,
		Components: []string{"widget", "widget_extra"},
	})
	locks.Set("https://github.com/acme/card", domain.LockedDependency{
		Source:    "https://github.com/acme/card",
		Version:   "v3.0.1",
		IsRelease: true,
		Type:      domain.DependencyTypeLovelace,
	})
	locks.Set("https://github.com/acme/nothing", domain.LockedDependency{
		Source:     "https://github.com/acme/nothing",
		Version:    "abc1234",
		Type:       domain.DependencyTypeCore,
		Components: []string{},
	})

	require.NoError(t, store.WriteLockedDependencies(root, locks))

	raw, err := afero.ReadFile(afs, "/config/hass-deps.lock")
	require.NoError(t, err)
	assert.YAMLEq(t, `https://github.com/acme/widget:
  version: "1.0"
  type: core
  components: [widget, widget_extra]
https://github.com/acme/card:
  version: v3.0.1
  type: lovelace
  is_release: true
https://github.com/acme/nothing:
  version: abc1234
  type: core
  components: []
`, string(raw))

	loaded, err := store.LoadLockedDependencies(root)
	require.NoError(t, err)
	assert.Equal(t, locks.Keys(), loaded.Keys())
	for source, want := range locks.All() {
		got, ok := loaded.Get(source)
		require.True(t, ok)
		assert.True(t, want.Equal(got), "record for %s changed across round trip", source)
	}
}
