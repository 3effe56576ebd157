package cli

import (
	"testing"
	"time"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/rmarchan/tablero/pkg/storage"
)

func TestWatchCommand_OnceRendersAndReturns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TABLERO_WATCH_ONCE", "true")

	repo := storage.NewFilesystemRepository(dir)
	if err := repo.Initialize(); err != nil {
		t.Fatal(err)
	}
	snap := &tracking.Snapshot{ID: "snap", Source: "mirror", FetchedAt: time.Now()}
	if err := repo.SaveSnapshot(snap); err != nil {
		t.Fatal(err)
	}

	RootCmd.SetArgs([]string{"--project", dir, "watch"})
	t.Cleanup(func() { projectPath = "" })

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("watch: %v", err)
	}
}
