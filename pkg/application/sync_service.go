package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/rmarchan/tablero/pkg/storage"
)

// Fetcher pulls the current work-item list from a tracker backend.
type Fetcher interface {
	// Name identifies the backend for the snapshot's source field.
	Name() string
	// FetchWorkItems returns the full flat item list.
	FetchWorkItems(ctx context.Context) ([]tracking.WorkItem, error)
}

// SyncService fetches fresh snapshots from the configured tracker and
// stores them in the workspace.
type SyncService struct {
	repo *storage.FilesystemRepository
	now  func() time.Time
}

// NewSyncService creates a sync service. A nil now means time.Now.
func NewSyncService(repo *storage.FilesystemRepository, now func() time.Time) *SyncService {
	if now == nil {
		now = time.Now
	}
	return &SyncService{repo: repo, now: now}
}

// Sync fetches the tracker's current items and persists them as the new
// workspace snapshot.
func (s *SyncService) Sync(ctx context.Context, fetcher Fetcher) (*tracking.Snapshot, error) {
	items, err := fetcher.FetchWorkItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work items: %w", err)
	}

	snapshot := &tracking.Snapshot{
		ID:        uuid.New().String(),
		Source:    fetcher.Name(),
		FetchedAt: s.now(),
		Items:     items,
	}

	if err := s.repo.SaveSnapshot(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Import validates an exported snapshot file and installs it as the
// workspace snapshot.
func (s *SyncService) Import(path string) (*tracking.Snapshot, error) {
	return s.repo.ImportSnapshot(path)
}
