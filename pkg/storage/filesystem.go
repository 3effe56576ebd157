// Package storage persists the tablero workspace: the fetched snapshot,
// stage configuration, and the user-edited weighting and roster tables.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	"github.com/rmarchan/tablero/pkg/domain/hierarchy"
	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"gopkg.in/yaml.v3"
)

const TableroDir = ".tablero"
const SnapshotFile = "snapshot.json"
const StagesFile = "stages.yaml"
const WeightingsFile = "weightings.yaml"
const ProfilesFile = "profiles.yaml"
const TrackerFile = "tracker.yaml"

// StagesConfig is the stage table plus the deliverable date schedule as
// stored in .tablero/stages.yaml.
type StagesConfig struct {
	Jurisdiction string                        `yaml:"jurisdiction"`
	Stages       []hierarchy.Stage             `yaml:"stages"`
	Schedule     hierarchy.DeliverableSchedule `yaml:"schedule"`
}

// DefaultStagesConfig returns the built-in stage plan.
func DefaultStagesConfig() *StagesConfig {
	return &StagesConfig{
		Jurisdiction: "AR",
		Stages:       hierarchy.DefaultStages(),
		Schedule:     hierarchy.DefaultSchedule(),
	}
}

type FilesystemRepository struct {
	root        string
	retryConfig retry.Config
}

func NewFilesystemRepository(root string) *FilesystemRepository {
	return &FilesystemRepository{
		root: root,
		retryConfig: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}
}

// Root returns the workspace root directory.
func (r *FilesystemRepository) Root() string {
	return r.root
}

// ResolvePath ensures the path is within the .tablero directory and
// prevents traversal.
func (r *FilesystemRepository) ResolvePath(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}

	baseDir := filepath.Join(r.root, TableroDir)
	fullPath := filepath.Join(baseDir, filename)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, baseDir) || filepath.Dir(cleanPath) != baseDir {
		return "", fmt.Errorf("invalid file path: %s", filename)
	}

	return cleanPath, nil
}

func (r *FilesystemRepository) Initialize() error {
	path := filepath.Join(r.root, TableroDir)
	if err := os.MkdirAll(path, 0700); err != nil {
		return fmt.Errorf("failed to create .tablero directory: %w", err)
	}
	return nil
}

func (r *FilesystemRepository) IsInitialized() bool {
	_, err := os.Stat(filepath.Join(r.root, TableroDir))
	return err == nil
}

// SaveSnapshot stores the fetched work-item snapshot as JSON.
func (r *FilesystemRepository) SaveSnapshot(s *tracking.Snapshot) error {
	path, err := r.ResolvePath(SnapshotFile)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadSnapshot reads the last fetched snapshot. A workspace that has never
// synced returns an error.
func (r *FilesystemRepository) LoadSnapshot() (*tracking.Snapshot, error) {
	retryer := retry.New[*tracking.Snapshot](r.retryConfig)

	return retryer.Do(context.Background(), func(ctx context.Context) (*tracking.Snapshot, error) {
		path, err := r.ResolvePath(SnapshotFile)
		if err != nil {
			return nil, err
		}

		// #nosec G304 -- Path is resolved and validated via ResolvePath
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot file: %w", err)
		}

		var s tracking.Snapshot
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return &s, nil
	})
}

// SaveStages writes the stage configuration to .tablero/stages.yaml.
func (r *FilesystemRepository) SaveStages(cfg *StagesConfig) error {
	path, err := r.ResolvePath(StagesFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal stages: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadStages reads the stage configuration, falling back to the built-in
// plan when the file does not exist yet.
func (r *FilesystemRepository) LoadStages() (*StagesConfig, error) {
	path, err := r.ResolvePath(StagesFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStagesConfig(), nil
		}
		return nil, fmt.Errorf("failed to read stages file: %w", err)
	}

	var cfg StagesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stages: %w", err)
	}
	if cfg.Jurisdiction == "" {
		cfg.Jurisdiction = "AR"
	}

	return &cfg, nil
}

// SaveWeightings writes the weighting table to .tablero/weightings.yaml.
func (r *FilesystemRepository) SaveWeightings(t *team.WeightingTable) error {
	path, err := r.ResolvePath(WeightingsFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal weightings: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadWeightings reads the weighting table; a missing file means nobody
// has an override yet and every assignee weighs 1.
func (r *FilesystemRepository) LoadWeightings() (*team.WeightingTable, error) {
	path, err := r.ResolvePath(WeightingsFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return team.NewWeightingTable(), nil
		}
		return nil, fmt.Errorf("failed to read weightings file: %w", err)
	}

	var t team.WeightingTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weightings: %w", err)
	}

	return &t, nil
}

// SaveProfiles writes the role roster to .tablero/profiles.yaml.
func (r *FilesystemRepository) SaveProfiles(cfg *team.ProfilesConfig) error {
	path, err := r.ResolvePath(ProfilesFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// LoadProfiles reads the role roster, empty when not configured.
func (r *FilesystemRepository) LoadProfiles() (*team.ProfilesConfig, error) {
	path, err := r.ResolvePath(ProfilesFile)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Path is resolved and validated via ResolvePath
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &team.ProfilesConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read profiles file: %w", err)
	}

	var cfg team.ProfilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profiles: %w", err)
	}

	return &cfg, nil
}
