package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/output"
)

func logCtx() context.Context {
	l := log.New(&bytes.Buffer{}, false, false)
	return log.WithLogger(context.Background(), l)
}

func TestRunShell_Success(t *testing.T) {
	t.Parallel()
	var stdout bytes.Buffer
	ctx := output.WithPrinter(logCtx(), &stdout)
	if err := RunShell(ctx, "sh", "echo hello"); err != nil {
		t.Errorf("RunShell(echo hello) = %v, want nil", err)
	}
	// Output the command does not redirect reaches the printer
	if stdout.String() != "hello\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "hello\n")
	}
}

func TestRunShell_Redirects(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	out := filepath.Join(dir, "foo.out")
	errFile := filepath.Join(dir, "foo.err")

	var stdout bytes.Buffer
	ctx := output.WithPrinter(logCtx(), &stdout)
	err := RunShell(ctx, "sh", `echo "-msg hello " > "`+out+`" 2> "`+errFile+`"; echo oops >&2; echo leaked`)
	if err != nil {
		t.Fatalf("RunShell = %v, want nil", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read %s: %v", out, err)
	}
	if got := string(data); got != "-msg hello \n" {
		t.Errorf(".out content = %q, want %q", got, "-msg hello \n")
	}
	if _, err := os.Stat(errFile); err != nil {
		t.Errorf(".err file should exist: %v", err)
	}
	// Only the part after the redirected command is printed
	if stdout.String() != "leaked\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "leaked\n")
	}
}

func TestRunShell_Failure(t *testing.T) {
	t.Parallel()
	err := RunShell(logCtx(), "sh", "exit 3")
	if err == nil {
		t.Fatal("RunShell(exit 3) = nil, want error")
	}
	if code := ExitCode(err); code != 3 {
		t.Errorf("ExitCode = %d, want 3", code)
	}
}

func TestRunShell_StderrMessage(t *testing.T) {
	t.Parallel()
	err := RunShell(logCtx(), "sh", "echo 'bad thing' >&2; exit 1")
	if err == nil {
		t.Fatal("RunShell = nil, want error")
	}
	if err.Error() != "bad thing" {
		t.Errorf("RunShell error = %q, want %q", err.Error(), "bad thing")
	}
	var shellErr *ShellError
	if !errors.As(err, &shellErr) {
		t.Fatalf("RunShell error = %T, want *ShellError", err)
	}
	if code := ExitCode(err); code != 1 {
		t.Errorf("ExitCode = %d, want 1", code)
	}
}

func TestRunShell_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(logCtx())
	cancel()
	err := RunShell(ctx, "sh", "sleep 10")
	if err != context.Canceled {
		t.Errorf("RunShell error = %v, want context.Canceled", err)
	}
}

func TestRunShell_MissingShell(t *testing.T) {
	t.Parallel()
	err := RunShell(logCtx(), "definitely-not-a-shell-xyz", "true")
	if err == nil {
		t.Fatal("RunShell with missing shell = nil, want error")
	}
	if code := ExitCode(err); code != -1 {
		t.Errorf("ExitCode = %d, want -1", code)
	}
}

func TestRunShell_VerboseLogsCommand(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&buf, true, false))
	if err := RunShell(ctx, "sh", "true"); err != nil {
		t.Fatalf("RunShell = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "$ sh -c true") {
		t.Errorf("verbose output = %q, want prefix %q", buf.String(), "$ sh -c true")
	}
}

func TestLookShell(t *testing.T) {
	t.Parallel()
	if err := LookShell("sh"); err != nil {
		t.Errorf("LookShell(sh) = %v, want nil", err)
	}
	if err := LookShell("definitely-not-a-shell-xyz"); err == nil {
		t.Error("LookShell(missing) = nil, want error")
	}
}
