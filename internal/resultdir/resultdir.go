// Package resultdir manages the output directory holding the per-section
// .cmd, .out and .err artifacts.
package resultdir

import (
	"context"
	"fmt"
	"os"

	"github.com/raphi011/cmdbatch/internal/log"
)

// Artifact extensions
const (
	ExtCmd = "cmd"
	ExtOut = "out"
	ExtErr = "err"
)

// CreateError reports an output directory that did not exist and could not
// be created. It is a warning: later file writes fail on their own.
type CreateError struct {
	Dir string
	Err error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create '%s' directory: %v", e.Dir, e.Err)
}

func (e *CreateError) Unwrap() error {
	return e.Err
}

// Ensure creates dir (a single level, parents are not created) unless it is
// already a directory.
func Ensure(ctx context.Context, dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		return &CreateError{Dir: dir, Err: err}
	}
	log.FromContext(ctx).Printf("'%s' directory has been created.\n", dir)
	return nil
}

// ArtifactPath returns <dir>/<section>.<ext>. dir is not cleaned, so paths
// show up exactly as the operator typed them.
func ArtifactPath(dir, section, ext string) string {
	return dir + string(os.PathSeparator) + section + "." + ext
}
