package storage

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rmarchan/tablero/pkg/domain/tracking"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed snapshot_schema.json
var snapshotSchema string

// ValidateSnapshot checks an externally supplied snapshot document against
// the snapshot schema and returns the validation messages, empty when the
// document is well-formed.
func ValidateSnapshot(data []byte) ([]string, error) {
	schema := gojsonschema.NewStringLoader(snapshotSchema)
	doc := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schema, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to validate snapshot: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return msgs, nil
}

// ImportSnapshot validates a snapshot file produced elsewhere (an export,
// a fixture, a mirror dump) and installs it as the workspace snapshot.
func (r *FilesystemRepository) ImportSnapshot(path string) (*tracking.Snapshot, error) {
	// #nosec G304 -- caller-chosen import path, read-only
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	problems, err := ValidateSnapshot(data)
	if err != nil {
		return nil, err
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("snapshot does not match schema: %v", problems)
	}

	var s tracking.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	if err := r.SaveSnapshot(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
