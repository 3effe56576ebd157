package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rmarchan/tablero/pkg/application"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/rmarchan/tablero/pkg/storage"
)

type stubFetcher struct {
	items []tracking.WorkItem
	err   error
}

func (f *stubFetcher) Name() string { return "stub" }

func (f *stubFetcher) FetchWorkItems(ctx context.Context) ([]tracking.WorkItem, error) {
	return f.items, f.err
}

func TestSyncService_Sync(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	fetcher := &stubFetcher{items: []tracking.WorkItem{
		{ID: 1, Title: "Login", Type: tracking.TypeUserStory},
	}}

	svc := application.NewSyncService(repo, reportNow)
	snapshot, err := svc.Sync(context.Background(), fetcher)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}

	if snapshot.ID == "" {
		t.Error("expected a generated snapshot id")
	}
	if snapshot.Source != "stub" {
		t.Errorf("source = %q, want stub", snapshot.Source)
	}
	if !snapshot.FetchedAt.Equal(reportNow()) {
		t.Errorf("FetchedAt = %v, want the injected clock", snapshot.FetchedAt)
	}

	loaded, err := repo.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded.ID != snapshot.ID || len(loaded.Items) != 1 {
		t.Errorf("persisted snapshot = %s with %d items", loaded.ID, len(loaded.Items))
	}
}

func TestSyncService_SyncFetchError(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}

	svc := application.NewSyncService(repo, nil)
	_, err := svc.Sync(context.Background(), &stubFetcher{err: errors.New("boom")})
	if err == nil {
		t.Fatal("expected fetch error to propagate")
	}

	if _, err := repo.LoadSnapshot(); err == nil {
		t.Error("a failed sync must not leave a snapshot behind")
	}
}
