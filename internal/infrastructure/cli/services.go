package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rmarchan/tablero/pkg/storage"
)

func getProjectRoot() (string, error) {
	if projectPath != "" {
		abs, err := filepath.Abs(projectPath)
		if err != nil {
			return "", fmt.Errorf("invalid project path %q: %w", projectPath, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", fmt.Errorf("project path %q: %w", abs, err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("project path %q is not a directory", abs)
		}
		return abs, nil
	}
	return os.Getwd()
}

func loadRepository() (*storage.FilesystemRepository, error) {
	root, err := getProjectRoot()
	if err != nil {
		return nil, err
	}
	repo := storage.NewFilesystemRepository(root)
	if !repo.IsInitialized() {
		return nil, fmt.Errorf("no %s workspace here: run 'tablero init' first", storage.TableroDir)
	}
	return repo, nil
}
