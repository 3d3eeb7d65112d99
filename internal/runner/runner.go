// Package runner executes expanded batch commands one after another.
//
// Every command is echoed to stdout before it runs. A command's exit status
// does not stop the batch and is not reported; its output is only visible in
// the section's .out and .err files. Verbose mode logs the status for
// troubleshooting.
package runner

import (
	"bytes"
	"context"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/raphi011/cmdbatch/internal/cmd"
	"github.com/raphi011/cmdbatch/internal/expand"
	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/output"
)

// Reporter receives progress while the batch runs. While a reporter is
// active, command echoes and any command output that is not redirected go
// through its Println, which prints them on stdout without breaking the
// progress display.
type Reporter interface {
	Start()
	Step(index int, section string)
	Println(line string)
	Stop()
}

// Options control how jobs are run.
type Options struct {
	Shell    string   // shell used as "<shell> -c <command>"
	DryRun   bool     // print commands without running them
	Progress Reporter // optional, nil disables progress output
}

// Run prints every job's command and, unless DryRun is set, runs it and waits
// for it to finish before starting the next. It only returns an error when
// ctx is cancelled; remaining jobs are then skipped.
func Run(ctx context.Context, jobs []expand.Job, opts Options) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	if opts.DryRun {
		for _, job := range jobs {
			out.Command(job.Command)
		}
		return nil
	}

	var lines *lineWriter
	if opts.Progress != nil {
		opts.Progress.Start()
		defer opts.Progress.Stop()
		lines = &lineWriter{println: opts.Progress.Println}
		ctx = output.WithPrinter(ctx, lines)
	}

	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Progress != nil {
			opts.Progress.Println(job.Command)
			opts.Progress.Step(i, job.Section)
		} else {
			out.Command(job.Command)
		}

		err := cmd.RunShell(ctx, opts.Shell, job.Command)
		if lines != nil {
			lines.Flush()
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			l.Debug("command failed", "section", job.Section, "exit", cmd.ExitCode(err), "error", err)
		}
	}
	return nil
}

// lineWriter hands complete lines to println. Flush emits a trailing
// partial line.
type lineWriter struct {
	println func(string)
	buf     []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.println(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *lineWriter) Flush() {
	if len(w.buf) > 0 {
		w.println(string(w.buf))
		w.buf = w.buf[:0]
	}
}

// Copy puts the jobs' commands, one per line, on the system clipboard.
func Copy(jobs []expand.Job) error {
	lines := make([]string, len(jobs))
	for i, job := range jobs {
		lines[i] = job.Command
	}
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
