package resultdir

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/cmdbatch/internal/log"
)

func logCtx(buf *bytes.Buffer) context.Context {
	return log.WithLogger(context.Background(), log.New(buf, false, false))
}

func TestEnsure_Creates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	dir := filepath.Join(t.TempDir(), "results")

	if err := Ensure(logCtx(&buf), dir); err != nil {
		t.Fatalf("Ensure = %v, want nil", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected %s to be a directory: %v", dir, err)
	}
	if want := "'" + dir + "' directory has been created.\n"; buf.String() != want {
		t.Errorf("log output = %q, want %q", buf.String(), want)
	}
}

func TestEnsure_Existing(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	dir := t.TempDir()

	if err := Ensure(logCtx(&buf), dir); err != nil {
		t.Fatalf("Ensure = %v, want nil", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Ensure on existing dir logged %q", buf.String())
	}
}

func TestEnsure_NotRecursive(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "missing", "results")

	err := Ensure(logCtx(&bytes.Buffer{}), dir)
	var createErr *CreateError
	if !errors.As(err, &createErr) {
		t.Fatalf("Ensure = %v, want *CreateError", err)
	}
	if createErr.Dir != dir {
		t.Errorf("CreateError.Dir = %q, want %q", createErr.Dir, dir)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Ensure error should wrap os.ErrNotExist, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Dir(dir)); !os.IsNotExist(statErr) {
		t.Error("parent directory must not be created")
	}
}

func TestEnsure_FileInTheWay(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "results")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := Ensure(logCtx(&bytes.Buffer{}), path)
	if err == nil {
		t.Fatal("Ensure = nil, want error when a file occupies the path")
	}
	if !strings.Contains(err.Error(), "failed to create '"+path+"' directory") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestArtifactPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dir, section, ext, want string
	}{
		{"results", "foo", ExtOut, "results/foo.out"},
		{"./results", "foo", ExtErr, "./results/foo.err"},
		{"/tmp/r", "eta Tau", ExtCmd, "/tmp/r/eta Tau.cmd"},
	}
	for _, tt := range tests {
		if got := ArtifactPath(tt.dir, tt.section, tt.ext); got != tt.want {
			t.Errorf("ArtifactPath(%q, %q, %q) = %q, want %q", tt.dir, tt.section, tt.ext, got, tt.want)
		}
	}
}
