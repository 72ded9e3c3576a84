// Package settings resolves process configuration from the environment.
package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HASS_DEPS"

const (
	keyConfigDir    = "config_dir"
	keyHTTPTimeout  = "http_timeout"
	keyGitHubAPIURL = "github_api_url"
	keyGitHubToken  = "github_token"
	keyGit          = "git"
)

// Load reads settings from HASS_DEPS_* environment variables.
// The GitHub token also falls back to the conventional GITHUB_TOKEN.
func Load() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyConfigDir, defaults.ConfigDir)
	v.SetDefault(keyHTTPTimeout, defaults.HTTPTimeout.String())
	v.SetDefault(keyGitHubAPIURL, defaults.GitHubAPIURL)
	v.SetDefault(keyGit, defaults.GitBinary)

	if err := v.BindEnv(keyGitHubToken, EnvPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN"); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to bind environment")
	}

	timeout, err := parseTimeout(v.GetString(keyHTTPTimeout))
	if err != nil {
		return domain.Settings{}, err
	}

	return domain.Settings{
		ConfigDir:    v.GetString(keyConfigDir),
		HTTPTimeout:  timeout,
		GitHubAPIURL: strings.TrimSuffix(v.GetString(keyGitHubAPIURL), "/"),
		GitHubToken:  v.GetString(keyGitHubToken),
		GitBinary:    v.GetString(keyGit),
	}, nil
}

// parseTimeout accepts a Go duration ("45s") or a bare number of seconds.
func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		secs, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return 0, zerr.With(zerr.Wrap(domain.ErrSettingsInvalid, "invalid HTTP timeout"), "value", raw)
		}
		d = time.Duration(secs) * time.Second
	}
	if d <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrSettingsInvalid, "HTTP timeout must be positive"), "value", raw)
	}
	return d, nil
}
