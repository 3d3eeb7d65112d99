package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/output"
)

// RunShell runs command through "<shell> -c" and waits for it. Stdin is
// inherited and stdout goes to the context's output printer, so anything the
// command does not redirect itself stays visible. Whatever the shell writes
// to stderr (for example when a redirect target cannot be opened) becomes the
// error message on failure.
func RunShell(ctx context.Context, shell, command string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := log.FromContext(ctx).Command("", shell, "-c", command)
	start := time.Now()

	c := exec.CommandContext(ctx, shell, "-c", command)
	c.Stdin = os.Stdin
	c.Stdout = output.FromContext(ctx).Writer()
	var stderr bytes.Buffer
	c.Stderr = &stderr

	err := c.Run()
	done(time.Since(start))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
		return &ShellError{Stderr: errMsg, Err: err}
	}
	return err
}

// ShellError carries the shell's own stderr output. Its message is that
// output; the wrapped error keeps the exit status.
type ShellError struct {
	Stderr string
	Err    error
}

func (e *ShellError) Error() string {
	return e.Stderr
}

func (e *ShellError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit status from an error returned by RunShell.
// Returns -1 when the process did not exit normally or never started.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// LookShell reports whether shell can be found in PATH.
func LookShell(shell string) error {
	if _, err := exec.LookPath(shell); err != nil {
		return fmt.Errorf("shell %q not found: %w", shell, err)
	}
	return nil
}
