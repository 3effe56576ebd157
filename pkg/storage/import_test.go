package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmarchan/tablero/pkg/storage"
)

func TestValidateSnapshot(t *testing.T) {
	tests := []struct {
		name         string
		doc          string
		wantProblems bool
	}{
		{
			"minimal valid",
			`{"items": []}`,
			false,
		},
		{
			"valid with coercible effort fields",
			`{"items": [{"id": 1, "title": "A", "estimated_hours": "16", "completed_hours": null}]}`,
			false,
		},
		{
			"missing items",
			`{"id": "x"}`,
			true,
		},
		{
			"item without title",
			`{"items": [{"id": 1}]}`,
			true,
		},
		{
			"non-numeric id",
			`{"items": [{"id": "one", "title": "A"}]}`,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems, err := storage.ValidateSnapshot([]byte(tt.doc))
			if err != nil {
				t.Fatalf("ValidateSnapshot: %v", err)
			}
			if (len(problems) > 0) != tt.wantProblems {
				t.Errorf("problems = %v, wantProblems %v", problems, tt.wantProblems)
			}
		})
	}
}

func TestImportSnapshot(t *testing.T) {
	repo := newTestRepo(t)

	doc := `{"id": "import-1", "items": [{"id": 1, "title": "Login", "type": "User Story", "child_work_items": [{"id": 2, "title": "API", "state": "Closed", "estimated_hours": 8}]}]}`
	path := filepath.Join(t.TempDir(), "export.json")
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	imported, err := repo.ImportSnapshot(path)
	if err != nil {
		t.Fatalf("ImportSnapshot: %v", err)
	}
	if len(imported.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(imported.Items))
	}

	loaded, err := repo.LoadSnapshot()
	if err != nil {
		t.Fatalf("LoadSnapshot after import: %v", err)
	}
	if loaded.ID != "import-1" {
		t.Errorf("snapshot id = %q, want import-1", loaded.ID)
	}
}

func TestImportSnapshot_RejectsInvalid(t *testing.T) {
	repo := newTestRepo(t)

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"id": "no items"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := repo.ImportSnapshot(path); err == nil {
		t.Error("expected schema rejection for a document without items")
	}

	if _, err := repo.ImportSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for a missing file")
	}
}
