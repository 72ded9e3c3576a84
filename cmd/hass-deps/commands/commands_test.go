package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hassdeps/cmd/hass-deps/commands"
	"go.trai.ch/hassdeps/internal/app"
	"go.trai.ch/hassdeps/internal/build"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	widget = "https://github.com/acme/widget"
	card   = "https://github.com/acme/card"
)

type fixture struct {
	store      *mocks.MockDependencyStore
	reconciler *mocks.MockReconciler
	stamps     *mocks.MockPackageInfoStore
	logger     *mocks.MockLogger
	out        *bytes.Buffer
	cli        *commands.CLI
}

func newFixture(t *testing.T, settings domain.Settings) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:      mocks.NewMockDependencyStore(ctrl),
		reconciler: mocks.NewMockReconciler(ctrl),
		stamps:     mocks.NewMockPackageInfoStore(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
		out:        &bytes.Buffer{},
	}
	a := app.New(f.store, f.reconciler, f.stamps, f.logger)
	f.cli = commands.New(app.NewComponents(a, f.logger, mocks.NewMockTelemetry(ctrl), settings))
	f.cli.SetOutput(f.out)
	return f
}

func (f *fixture) execute(args ...string) error {
	f.cli.SetArgs(args)
	return f.cli.Execute(context.Background())
}

func (f *fixture) expectEmpty(dir string) {
	f.store.EXPECT().LoadDependencies(dir).Return(domain.NewOrderedMap[domain.Dependency](), nil)
	f.store.EXPECT().LoadLockedDependencies(dir).Return(domain.NewOrderedMap[domain.LockedDependency](), nil)
}

func TestRoot_Help(t *testing.T) {
	f := newFixture(t, domain.DefaultSettings())
	require.NoError(t, f.execute("--help"))
	assert.Contains(t, f.out.String(), "hass-deps")
}

func TestVersion(t *testing.T) {
	f := newFixture(t, domain.DefaultSettings())
	require.NoError(t, f.execute("version"))
	assert.Equal(t, "hass-deps version "+build.Version+"\n", f.out.String())
}

func TestConfigDir_DefaultsFromSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.ConfigDir = "/homeassistant"
	f := newFixture(t, settings)

	f.store.EXPECT().DependenciesExist("/homeassistant").Return(true, nil)

	err := f.execute("init")
	require.ErrorIs(t, err, domain.ErrAlreadyInitialized)
}

func TestConfigDir_FlagOverridesSettings(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.ConfigDir = "/homeassistant"
	f := newFixture(t, settings)

	f.store.EXPECT().DependenciesExist("/other").Return(false, nil)
	f.store.EXPECT().WriteDependencies("/other", gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.execute("init", "--config-dir", "/other"))
}

func TestAdd_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Dependency
		save bool
	}{
		{
			name: "defaults",
			args: []string{"add", widget},
			want: domain.NewDependency(widget),
			save: true,
		},
		{
			name: "advanced",
			args: []string{
				"add", widget,
				"--include", "alpha", "--include", "beta",
				"--asset", "dist/a.js", "--asset", "dist/b.js",
				"--root-is-custom-components",
			},
			want: domain.Dependency{
				Source:                 widget,
				RootIsCustomComponents: true,
				Include:                []string{"alpha", "beta"},
				Assets:                 []string{"dist/a.js", "dist/b.js"},
			},
			save: true,
		},
		{
			name: "comma kept inside a value",
			args: []string{"add", widget, "--asset", "dist/a,b.js"},
			want: domain.Dependency{Source: widget, Assets: []string{"dist/a,b.js"}},
			save: true,
		},
		{
			name: "no save",
			args: []string{"add", widget, "--no-save"},
			want: domain.NewDependency(widget),
			save: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, domain.DefaultSettings())
			f.expectEmpty("./")

			lock := domain.LockedDependency{Source: widget, Version: "v1", Type: domain.DependencyTypeCore, Components: []string{"widget"}}
			f.reconciler.EXPECT().Reconcile(gomock.Any(), "./", tt.want, nil, false).Return(lock, nil)
			if tt.save {
				f.store.EXPECT().WriteDependencies("./", gomock.Any()).Return(nil)
				f.store.EXPECT().WriteLockedDependencies("./", gomock.Any()).Return(nil)
			}

			require.NoError(t, f.execute(tt.args...))
		})
	}
}

func TestAdd_RequiresSource(t *testing.T) {
	f := newFixture(t, domain.DefaultSettings())
	require.Error(t, f.execute("add"))
}

func TestInstall_Flags(t *testing.T) {
	f := newFixture(t, domain.DefaultSettings())
	deps := domain.NewOrderedMap[domain.Dependency]()
	deps.Set(widget, domain.NewDependency(widget))
	f.store.EXPECT().LoadDependencies("/cfg").Return(deps, nil)
	f.store.EXPECT().LoadLockedDependencies("/cfg").Return(domain.NewOrderedMap[domain.LockedDependency](), nil)

	lock := domain.LockedDependency{Source: widget, Version: "v1", Type: domain.DependencyTypeCore, Components: []string{}}
	f.reconciler.EXPECT().Reconcile(gomock.Any(), "/cfg", gomock.Any(), nil, true).Return(lock, nil)
	f.store.EXPECT().WriteLockedDependencies("/cfg", gomock.Any()).Return(nil)

	require.NoError(t, f.execute("install", "-c", "/cfg", "--force", "--keep-going"))
}

func TestUpgrade_Args(t *testing.T) {
	f := newFixture(t, domain.DefaultSettings())
	deps := domain.NewOrderedMap[domain.Dependency]()
	deps.Set(widget, domain.NewDependency(widget))
	deps.Set(card, domain.NewDependency(card))
	f.store.EXPECT().LoadDependencies("./").Return(deps, nil)
	f.store.EXPECT().LoadLockedDependencies("./").Return(domain.NewOrderedMap[domain.LockedDependency](), nil)

	f.reconciler.EXPECT().Reconcile(gomock.Any(), "./", domain.NewDependency(card), nil, false).
		Return(domain.LockedDependency{Source: card, Version: "v2", Type: domain.DependencyTypeLovelace}, nil)
	f.store.EXPECT().WriteLockedDependencies("./", gomock.Any()).Return(nil)

	require.NoError(t, f.execute("upgrade", card))
}

func TestStatus_Output(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := newFixture(t, domain.DefaultSettings())

	deps := domain.NewOrderedMap[domain.Dependency]()
	deps.Set(widget, domain.NewDependency(widget))
	deps.Set(card, domain.NewDependency(card))
	locks := domain.NewOrderedMap[domain.LockedDependency]()
	locks.Set(widget, domain.LockedDependency{
		Source: widget, Version: "v1.2.0", Type: domain.DependencyTypeCore, Components: []string{"widget"},
	})
	f.store.EXPECT().LoadDependencies("./").Return(deps, nil)
	f.store.EXPECT().LoadLockedDependencies("./").Return(locks, nil)
	f.stamps.EXPECT().Get("custom_components/widget").Return(&domain.PackageInfo{Version: "v1.2.0"}, nil)

	require.NoError(t, f.execute("status"))
	assert.Equal(t, "installed widget core@v1.2.0\nunlocked card\n", f.out.String())
}
