// Package tracker holds the fetchers that pull work items out of an
// external tracker: the read-only mirror endpoint and the GitHub Issues
// backend. The backend is selected by .tablero/tracker.yaml.
package tracker

import (
	"fmt"
	"os"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/rmarchan/tablero/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Backend names accepted in tracker.yaml.
const (
	BackendMirror = "mirror"
	BackendGitHub = "github"
)

// MirrorConfig points at the read-only mirror endpoint that exposes the
// tracker's work items as JSON.
type MirrorConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key"`
}

// GitHubConfig selects a repository whose issues act as work items.
type GitHubConfig struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Token string `yaml:"token"`
}

// Config is the tracker selection stored in .tablero/tracker.yaml.
type Config struct {
	Backend string       `yaml:"backend"`
	Mirror  MirrorConfig `yaml:"mirror"`
	GitHub  GitHubConfig `yaml:"github"`
}

// LoadConfig reads tracker.yaml from the workspace. Secrets fall back to
// environment variables so tokens never have to live in the file.
func LoadConfig(repo *storage.FilesystemRepository) (*Config, error) {
	path, err := repo.ResolvePath(storage.TrackerFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no tracker configured: create %s/%s", storage.TableroDir, storage.TrackerFile)
		}
		return nil, fmt.Errorf("failed to read tracker config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tracker config: %w", err)
	}

	if cfg.Mirror.APIKey == "" {
		cfg.Mirror.APIKey = os.Getenv("TABLERO_MIRROR_KEY")
	}
	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	return &cfg, nil
}

// SaveConfig writes tracker.yaml. Tokens supplied via environment are not
// written back.
func SaveConfig(repo *storage.FilesystemRepository, cfg *Config) error {
	path, err := repo.ResolvePath(storage.TrackerFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal tracker config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// NewFetcher builds the fetcher for the configured backend.
func NewFetcher(cfg *Config) (application.Fetcher, error) {
	switch cfg.Backend {
	case BackendMirror:
		if cfg.Mirror.URL == "" {
			return nil, fmt.Errorf("mirror backend requires a url")
		}
		return NewMirrorClient(cfg.Mirror), nil
	case BackendGitHub:
		if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
			return nil, fmt.Errorf("github backend requires owner and repo")
		}
		return NewGitHubFetcher(cfg.GitHub), nil
	default:
		return nil, fmt.Errorf("unknown tracker backend: %q", cfg.Backend)
	}
}
