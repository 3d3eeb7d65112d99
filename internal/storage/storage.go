// Package storage provides atomic file writes for result artifacts.
package storage

import (
	"os"
)

// WriteFile atomically writes data to path. The parent directory must
// already exist; it is never created here. Data goes to a temp file next to
// path which is then renamed over it, so readers never see a partial file.
func WriteFile(path string, data []byte) error {
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return err
	}
	return nil
}
