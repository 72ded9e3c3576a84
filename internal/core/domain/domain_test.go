package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/internal/core/domain"
)

func TestDependency_Name(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "https://github.com/acme/widget", want: "widget"},
		{source: "https://github.com/acme/widget.git", want: "widget"},
		{source: "https://github.com/acme/lovelace-card/", want: "lovelace-card"},
		{source: "git@example.com:acme/thing.git", want: "thing"},
		{source: "/srv/repos/local-addon", want: "local-addon"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewDependency(tt.source).Name())
		})
	}
}

func TestDependency_Validate(t *testing.T) {
	tests := []struct {
		source  string
		wantErr bool
	}{
		{source: "https://github.com/acme/widget", wantErr: false},
		{source: "https://git.example.com/", wantErr: true},
		{source: "https://git.example.com", wantErr: true},
		{source: "https://git.example.com/..", wantErr: true},
		{source: "https://git.example.com/.git", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			err := domain.NewDependency(tt.source).Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidDependency)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDependency_GitHubSlug(t *testing.T) {
	slug, ok := domain.NewDependency("https://github.com/acme/widget.git").GitHubSlug()
	assert.True(t, ok)
	assert.Equal(t, "acme/widget", slug)

	slug, ok = domain.NewDependency("https://github.com/acme/card/").GitHubSlug()
	assert.True(t, ok)
	assert.Equal(t, "acme/card", slug)

	_, ok = domain.NewDependency("https://gitlab.com/acme/widget").GitHubSlug()
	assert.False(t, ok)

	_, ok = domain.NewDependency("/srv/repos/widget").GitHubSlug()
	assert.False(t, ok)
}

func TestDependency_SourceHash(t *testing.T) {
	a := domain.NewDependency("https://github.com/acme/widget")
	b := domain.NewDependency("https://github.com/acme/other")

	assert.Len(t, a.SourceHash(), 16)
	assert.Equal(t, a.SourceHash(), domain.NewDependency(a.Source).SourceHash())
	assert.NotEqual(t, a.SourceHash(), b.SourceHash())
}

func TestDependency_IsAdvanced(t *testing.T) {
	assert.False(t, domain.NewDependency("x").IsAdvanced())
	assert.True(t, domain.Dependency{Source: "x", RootIsCustomComponents: true}.IsAdvanced())
	assert.True(t, domain.Dependency{Source: "x", Include: []string{}}.IsAdvanced())
	assert.True(t, domain.Dependency{Source: "x", Assets: []string{"a.js"}}.IsAdvanced())
}

func TestDependency_Includes(t *testing.T) {
	all := domain.NewDependency("x")
	assert.True(t, all.Includes("foo"))

	some := domain.Dependency{Source: "x", Include: []string{"foo"}}
	assert.True(t, some.Includes("foo"))
	assert.False(t, some.Includes("bar"))

	none := domain.Dependency{Source: "x", Include: []string{}}
	assert.False(t, none.Includes("foo"))
}

func TestParseDependencyType(t *testing.T) {
	typ, err := domain.ParseDependencyType("core")
	require.NoError(t, err)
	assert.Equal(t, domain.DependencyTypeCore, typ)

	typ, err = domain.ParseDependencyType("lovelace")
	require.NoError(t, err)
	assert.Equal(t, domain.DependencyTypeLovelace, typ)

	_, err = domain.ParseDependencyType("theme")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownDependencyType))
}

func TestLockedDependency_Validate(t *testing.T) {
	tests := []struct {
		name    string
		lock    domain.LockedDependency
		wantErr error
	}{
		{
			name: "core with components",
			lock: domain.LockedDependency{Type: domain.DependencyTypeCore, Components: []string{"a"}},
		},
		{
			name: "core with empty components",
			lock: domain.LockedDependency{Type: domain.DependencyTypeCore, Components: []string{}},
		},
		{
			name:    "core without components",
			lock:    domain.LockedDependency{Type: domain.DependencyTypeCore},
			wantErr: domain.ErrIntegrityViolation,
		},
		{
			name: "lovelace without components",
			lock: domain.LockedDependency{Type: domain.DependencyTypeLovelace},
		},
		{
			name:    "lovelace with components",
			lock:    domain.LockedDependency{Type: domain.DependencyTypeLovelace, Components: []string{"a"}},
			wantErr: domain.ErrIntegrityViolation,
		},
		{
			name:    "unknown type",
			lock:    domain.LockedDependency{Type: "theme"},
			wantErr: domain.ErrUnknownDependencyType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lock.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestLockedDependency_Equal(t *testing.T) {
	base := domain.LockedDependency{
		Source:     "s",
		Version:    "v1",
		Type:       domain.DependencyTypeCore,
		Components: []string{"a", "b"},
	}

	same := base
	same.Components = []string{"a", "b"}
	assert.True(t, base.Equal(same))

	reordered := base
	reordered.Components = []string{"b", "a"}
	assert.False(t, base.Equal(reordered))

	empty := domain.LockedDependency{Source: "s", Type: domain.DependencyTypeCore, Components: []string{}}
	nilComponents := domain.LockedDependency{Source: "s", Type: domain.DependencyTypeCore}
	assert.False(t, empty.Equal(nilComponents))
}

func TestOrderedMap(t *testing.T) {
	m := domain.NewOrderedMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("a", 20)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.Has("c"))
	assert.False(t, m.Has("d"))

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "a" {
			break
		}
	}
	assert.Equal(t, []string{"b", "a"}, seen)

	var zero domain.OrderedMap[string]
	zero.Set("k", "v")
	assert.Equal(t, []string{"k"}, zero.Keys())
}

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "DependenciesPath",
			got:      domain.DependenciesPath("/config"),
			expected: filepath.Join("/config", "hass-deps.yaml"),
		},
		{
			name:     "LockPath",
			got:      domain.LockPath("/config"),
			expected: filepath.Join("/config", "hass-deps.lock"),
		},
		{
			name:     "CoreDestinationPath",
			got:      domain.CoreDestinationPath("/config", "widget"),
			expected: filepath.Join("/config", "custom_components", "widget"),
		},
		{
			name:     "LovelaceDestinationPath",
			got:      domain.LovelaceDestinationPath("/config", "card"),
			expected: filepath.Join("/config", "www", "community", "card"),
		},
		{
			name:     "PackageInfoPath",
			got:      domain.PackageInfoPath("/config/www/community/card"),
			expected: filepath.Join("/config", "www", "community", "card", ".hass-deps"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
