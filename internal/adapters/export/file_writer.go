package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// FileWriterAdapter writes exported configuration to disk
type FileWriterAdapter struct{}

// NewFileWriterAdapter creates a new file writer adapter
func NewFileWriterAdapter() *FileWriterAdapter {
	return &FileWriterAdapter{}
}

// WriteFile writes data to path through a temp file in the same directory
func (f *FileWriterAdapter) WriteFile(ctx context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	// Exports may carry signer keys
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// FileExists checks if a file exists
func (f *FileWriterAdapter) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Ensure the adapter implements the interface
var _ usecase.FileWriter = (*FileWriterAdapter)(nil)
