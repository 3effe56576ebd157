package storage_test

import (
	"testing"
	"time"

	"github.com/rmarchan/tablero/pkg/domain/team"
	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/rmarchan/tablero/pkg/storage"
)

func newTestRepo(t *testing.T) *storage.FilesystemRepository {
	t.Helper()
	repo := storage.NewFilesystemRepository(t.TempDir())
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return repo
}

func TestInitialize(t *testing.T) {
	repo := storage.NewFilesystemRepository(t.TempDir())
	if repo.IsInitialized() {
		t.Error("fresh directory should not be initialized")
	}
	if err := repo.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !repo.IsInitialized() {
		t.Error("directory should be initialized after Initialize")
	}
}

func TestResolvePath(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name     string
		filename string
		wantErr  bool
	}{
		{"plain file", "snapshot.json", false},
		{"empty", "", true},
		{"traversal", "../outside.json", true},
		{"nested", "sub/file.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.ResolvePath(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolvePath(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
		})
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	snapshot := &tracking.Snapshot{
		ID:        "snap-1",
		Source:    "mirror",
		FetchedAt: time.Date(2025, time.June, 16, 10, 0, 0, 0, time.UTC),
		Items: []tracking.WorkItem{
			{
				ID:             1,
				Title:          "Login flow",
				State:          tracking.StateActive,
				Type:           tracking.TypeUserStory,
				Tags:           []string{"Etapa 1", "Entregable 3"},
				EstimatedHours: 16,
				Children: []tracking.WorkItem{
					{ID: 2, Title: "API", State: tracking.StateClosed, Type: tracking.TypeTask, EstimatedHours: 8, CompletedHours: 7.5},
				},
			},
		},
	}

	if err := repo.SaveSnapshot(snapshot); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := repo.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}

	if loaded.ID != snapshot.ID || loaded.Source != snapshot.Source {
		t.Errorf("loaded = %s/%s, want %s/%s", loaded.ID, loaded.Source, snapshot.ID, snapshot.Source)
	}
	if len(loaded.Items) != 1 || len(loaded.Items[0].Children) != 1 {
		t.Fatalf("loaded items = %+v", loaded.Items)
	}
	if loaded.Items[0].Children[0].CompletedHours.Value() != 7.5 {
		t.Errorf("completed = %v, want 7.5", loaded.Items[0].Children[0].CompletedHours.Value())
	}
}

func TestLoadSnapshot_NeverSynced(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.LoadSnapshot(); err == nil {
		t.Error("expected error for a workspace that never synced")
	}
}

func TestLoadStages_DefaultsWhenMissing(t *testing.T) {
	repo := newTestRepo(t)

	cfg, err := repo.LoadStages()
	if err != nil {
		t.Fatalf("LoadStages: %v", err)
	}
	if cfg.Jurisdiction != "AR" {
		t.Errorf("jurisdiction = %q, want AR", cfg.Jurisdiction)
	}
	if len(cfg.Stages) != 4 {
		t.Errorf("stages = %d, want the 4 built-in stages", len(cfg.Stages))
	}
	if len(cfg.Schedule.DueDates) == 0 {
		t.Error("expected the built-in deliverable due dates")
	}
}

func TestStagesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	cfg := storage.DefaultStagesConfig()
	cfg.Jurisdiction = "ES"
	cfg.Stages = cfg.Stages[:2]

	if err := repo.SaveStages(cfg); err != nil {
		t.Fatalf("SaveStages: %v", err)
	}

	loaded, err := repo.LoadStages()
	if err != nil {
		t.Fatalf("LoadStages: %v", err)
	}
	if loaded.Jurisdiction != "ES" {
		t.Errorf("jurisdiction = %q, want ES", loaded.Jurisdiction)
	}
	if len(loaded.Stages) != 2 {
		t.Errorf("stages = %d, want 2", len(loaded.Stages))
	}
	if loaded.Stages[0].DueDate.Format("2006-01-02") != "2025-05-23" {
		t.Errorf("stage 1 due = %v", loaded.Stages[0].DueDate)
	}
}

func TestWeightingsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	// Missing file means an empty table, not an error.
	empty, err := repo.LoadWeightings()
	if err != nil {
		t.Fatalf("LoadWeightings: %v", err)
	}
	if empty.Factor("Ana") != 1 {
		t.Errorf("empty table Factor = %v, want 1", empty.Factor("Ana"))
	}

	table := team.NewWeightingTable()
	if err := table.SetFactor("Ana", 1.5); err != nil {
		t.Fatal(err)
	}
	if err := repo.SaveWeightings(table); err != nil {
		t.Fatalf("SaveWeightings: %v", err)
	}

	loaded, err := repo.LoadWeightings()
	if err != nil {
		t.Fatalf("LoadWeightings: %v", err)
	}
	if loaded.Factor("Ana") != 1.5 {
		t.Errorf("Factor(Ana) = %v, want 1.5", loaded.Factor("Ana"))
	}
}

func TestProfilesRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	empty, err := repo.LoadProfiles()
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if len(empty.Profiles) != 0 {
		t.Errorf("expected empty roster, got %+v", empty.Profiles)
	}

	cfg := &team.ProfilesConfig{}
	if err := cfg.AddMember("Backend", "Ana"); err != nil {
		t.Fatal(err)
	}
	cfg.Profiles[0].BudgetHours = 320

	if err := repo.SaveProfiles(cfg); err != nil {
		t.Fatalf("SaveProfiles: %v", err)
	}

	loaded, err := repo.LoadProfiles()
	if err != nil {
		t.Fatalf("LoadProfiles: %v", err)
	}
	if loaded.RoleFor("Ana") != "Backend" {
		t.Errorf("RoleFor(Ana) = %q, want Backend", loaded.RoleFor("Ana"))
	}
	if loaded.Profiles[0].BudgetHours != 320 {
		t.Errorf("budget = %v, want 320", loaded.Profiles[0].BudgetHours)
	}
}
