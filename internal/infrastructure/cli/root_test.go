package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmarchan/tablero/pkg/storage"
)

func TestRootCmd_RegistersCommands(t *testing.T) {
	want := []string{"init", "sync", "status", "dashboard", "team", "stages", "serve", "watch", "resources"}

	registered := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestInitCommand_CreatesWorkspace(t *testing.T) {
	dir := t.TempDir()

	RootCmd.SetArgs([]string{"--project", dir, "init", "--jurisdiction", "ES"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		projectPath = ""
		initJurisdiction = ""
	})

	if _, err := os.Stat(filepath.Join(dir, storage.TableroDir)); err != nil {
		t.Fatalf("workspace directory missing: %v", err)
	}

	repo := storage.NewFilesystemRepository(dir)
	cfg, err := repo.LoadStages()
	if err != nil {
		t.Fatalf("LoadStages: %v", err)
	}
	if cfg.Jurisdiction != "ES" {
		t.Errorf("jurisdiction = %q, want ES", cfg.Jurisdiction)
	}
}

func TestLoadRepository_Uninitialized(t *testing.T) {
	projectPath = t.TempDir()
	t.Cleanup(func() { projectPath = "" })

	if _, err := loadRepository(); err == nil {
		t.Error("expected error for an uninitialized workspace")
	}
}
