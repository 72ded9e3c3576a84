package domain

import "time"

const (
	// DefaultHTTPTimeout bounds every HTTP request made while fetching releases.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultGitHubAPIURL is the base URL of the GitHub REST API.
	DefaultGitHubAPIURL = "https://api.github.com"

	// DefaultGitBinary is the git executable looked up on PATH.
	DefaultGitBinary = "git"
)

// Settings is the process configuration resolved from the environment.
type Settings struct {
	ConfigDir    string
	HTTPTimeout  time.Duration
	GitHubAPIURL string
	GitHubToken  string
	GitBinary    string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		ConfigDir:    DefaultConfigDir,
		HTTPTimeout:  DefaultHTTPTimeout,
		GitHubAPIURL: DefaultGitHubAPIURL,
		GitBinary:    DefaultGitBinary,
	}
}
