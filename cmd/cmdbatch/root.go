package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/raphi011/cmdbatch/internal/config"
	"github.com/raphi011/cmdbatch/internal/log"
	"github.com/raphi011/cmdbatch/internal/output"
)

// errUsage marks invocations that printed the usage text.
var errUsage = errors.New("missing batch file argument")

// rootOptions holds the flags of one invocation.
type rootOptions struct {
	directory string
	dryRun    bool
	list      bool
	copy      bool
	verbose   bool
	quiet     bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cmdbatch [flags] <configFile> [sectionName]...",
		Short: "Run a command over many parameter sets declared in a batch file",
		Long: `cmdbatch expands every section of a batch file into a command line and runs
the commands one after another.

The [DEFAULT] section provides the command template; every other section
adds its options as "-name value" flags and may override the template with
its own command= entry. Keys of [DEFAULT] are inherited by all sections.

For each section three files are written to the output directory:
  <section>.cmd   the expanded command
  <section>.out   standard output of the command
  <section>.err   standard error of the command

Sections run in the order they are declared. Naming sections on the command
line restricts the run to those sections. Exit codes of the commands are not
checked; look at the .err files.

Batch files ending in .toml or .yaml/.yml are read in those formats, all
others as INI.`,
		Example: `  cmdbatch calibrators.cfg                 # Run every section
  cmdbatch calibrators.cfg vega "eta Tau"  # Run two sections
  cmdbatch -n calibrators.cfg              # Print commands only
  cmdbatch -d /tmp/out calibrators.cfg     # Write results to /tmp/out
  cmdbatch --list calibrators.cfg          # Show sections and templates`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			stderr := colorprofile.NewWriter(cmd.ErrOrStderr(), os.Environ())
			stdout := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())

			ctx = log.WithLogger(ctx, log.New(stderr, opts.verbose, opts.quiet))
			ctx = output.WithPrinter(ctx, stdout)
			ctx = config.WithConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Usage()
				return errUsage
			}
			return runBatch(cmd.Context(), opts, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&opts.directory, "directory", "d", cfg.Directory, "Output results in given directory")
	cmd.Flags().BoolVarP(&opts.dryRun, "dryRun", "n", false, "Output commands instead of running them")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List the selected sections and exit")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Copy the expanded commands to the clipboard")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show executed commands and their exit status")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output except warnings")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	cmd.MarkFlagsMutuallyExclusive("list", "dryRun")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	return cmd
}

// run executes the CLI with args and returns the process exit code.
func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			fmt.Fprintln(stderr)
			fmt.Fprintln(stderr, "Run 'cmdbatch -h' for help")
		}
		return 1
	}
	return 0
}

// Execute loads settings and runs the root command with the process arguments.
func Execute() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, &cfg, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
