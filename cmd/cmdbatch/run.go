package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/raphi011/cmdbatch/internal/batchfile"
	"github.com/raphi011/cmdbatch/internal/cmd"
	"github.com/raphi011/cmdbatch/internal/config"
	"github.com/raphi011/cmdbatch/internal/expand"
	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/output"
	"github.com/raphi011/cmdbatch/internal/resultdir"
	"github.com/raphi011/cmdbatch/internal/runner"
	"github.com/raphi011/cmdbatch/internal/ui/progress"
	"github.com/raphi011/cmdbatch/internal/ui/static"
)

// runBatch loads the batch file, expands the requested sections and runs them.
func runBatch(ctx context.Context, opts *rootOptions, path string, requested []string) error {
	l := log.FromContext(ctx)
	cfg := config.FromContext(ctx)

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return fmt.Errorf("file not found '%s'", path)
	}

	if opts.list {
		return listSections(ctx, path, requested)
	}

	l.Printf("This batch will loop on batch file '%s'.\n", path)
	if len(requested) > 0 {
		l.Println("For given sections:")
		l.Println(strings.Join(requested, ", "))
	}
	l.Printf("Output directory for results '%s'\n", opts.directory)

	if err := resultdir.Ensure(ctx, opts.directory); err != nil {
		l.Warnf("%v", err)
	}

	doc, err := batchfile.Load(path)
	if err != nil {
		return err
	}

	jobs, err := expand.Expand(ctx, doc, requested, opts.directory)
	if err != nil {
		return err
	}

	if opts.copy {
		if err := runner.Copy(jobs); err != nil {
			l.Warnf("failed to copy to clipboard: %v", err)
		}
	}

	runOpts := runner.Options{Shell: cfg.Shell, DryRun: opts.dryRun}
	if !opts.dryRun {
		if err := cmd.LookShell(cfg.Shell); err != nil {
			return err
		}
		if showProgress(cfg.Progress, opts) {
			runOpts.Progress = newProgressBar(ctx, os.Stdout, len(jobs))
		}
	}

	return runner.Run(ctx, jobs, runOpts)
}

// listSections prints the selected sections as a table without writing files.
func listSections(ctx context.Context, path string, requested []string) error {
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	doc, err := batchfile.Load(path)
	if err != nil {
		return err
	}

	sections, undefined := expand.Select(doc, requested)
	for _, u := range undefined {
		l.Warnf("%s", u)
	}

	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		template, merged, inherited, err := expand.Template(doc, s)
		if err != nil {
			return err
		}
		rows = append(rows, static.SectionTableRow(s.Name, template, inherited, len(merged.Options)))
	}
	out.Printf("%s", static.RenderTable(static.SectionTableHeaders, rows))
	return nil
}

// newProgressBar draws the bar on stdout when it is a terminal, so echoed
// commands are printed above it on the same stream. Otherwise the bar goes to
// stderr and echoes are written to the output printer unchanged.
func newProgressBar(ctx context.Context, stdout *os.File, total int) *progress.Bar {
	if isTerminal(stdout) {
		return progress.New(stdout, total)
	}
	return progress.New(os.Stderr, total).EchoTo(output.FromContext(ctx).Writer())
}

// showProgress decides whether the progress bar is drawn. In auto mode it
// needs both streams on a terminal, so piped command echoes stay intact.
func showProgress(mode string, opts *rootOptions) bool {
	switch mode {
	case config.ProgressNever:
		return false
	case config.ProgressAlways:
		return true
	}
	if opts.verbose || opts.quiet {
		return false
	}
	return isTerminal(os.Stdout) && isTerminal(os.Stderr)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
