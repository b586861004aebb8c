// Package config holds the endpoint and batch settings for pkgpulse.
//
// Settings come from [Default], optionally overlaid by a TOML file read with
// [Load]. Command-line flags are applied on top by the CLI.
//
// Example file:
//
//	registry_url   = "https://registry.npmjs.org"
//	downloads_url  = "https://api.npmjs.org/downloads"
//	github_api_url = "https://api.github.com"
//	repo_host      = "github.com"
//	timeout        = "10s"
//	concurrency    = 8
//	fail_fast      = false
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pkgpulse/pkg/errors"
)

// Default endpoints.
const (
	DefaultRegistryURL  = "https://registry.npmjs.org"
	DefaultDownloadsURL = "https://api.npmjs.org/downloads"
	DefaultGitHubAPIURL = "https://api.github.com"
	DefaultRepoHost     = "github.com"
	DefaultTimeout      = 10 * time.Second
)

// Config describes where pkgpulse sends requests and how a batch runs.
type Config struct {
	RegistryURL  string   `toml:"registry_url"`
	DownloadsURL string   `toml:"downloads_url"`
	GitHubAPIURL string   `toml:"github_api_url"`
	RepoHost     string   `toml:"repo_host"`
	Timeout      Duration `toml:"timeout"`

	// Concurrency bounds parallel inspections. Zero means one goroutine
	// per package.
	Concurrency int `toml:"concurrency"`

	// FailFast discards all records when any package fails.
	FailFast bool `toml:"fail_fast"`
}

// Duration is a time.Duration that decodes from TOML strings like "10s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the public npm and GitHub endpoints.
func Default() Config {
	return Config{
		RegistryURL:  DefaultRegistryURL,
		DownloadsURL: DefaultDownloadsURL,
		GitHubAPIURL: DefaultGitHubAPIURL,
		RepoHost:     DefaultRepoHost,
		Timeout:      Duration{DefaultTimeout},
	}
}

// Load reads a TOML file over [Default]. Keys missing from the file keep
// their default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks endpoint URLs and numeric bounds, and trims trailing
// slashes from the endpoints.
func (c *Config) Validate() error {
	for _, ep := range []struct {
		name string
		val  *string
	}{
		{"registry_url", &c.RegistryURL},
		{"downloads_url", &c.DownloadsURL},
		{"github_api_url", &c.GitHubAPIURL},
	} {
		u, err := url.Parse(*ep.val)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be an absolute http(s) URL, got %q", ep.name, *ep.val)
		}
		*ep.val = strings.TrimSuffix(*ep.val, "/")
	}

	if c.RepoHost == "" || strings.ContainsAny(c.RepoHost, "/ ") {
		return errors.New(errors.ErrCodeInvalidConfig, "repo_host must be a bare host name, got %q", c.RepoHost)
	}
	if c.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timeout cannot be negative")
	}
	if c.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency cannot be negative")
	}
	return nil
}
