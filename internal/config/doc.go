// Package config handles loading and validation of cmdbatch settings.
//
// Settings are read from ~/.config/cmdbatch/config.toml with environment
// variable overrides. They only provide defaults for the command line; the
// batch file itself is loaded by the batchfile package.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (-d/--directory)
//   - CMDBATCH_DIRECTORY, CMDBATCH_SHELL, CMDBATCH_PROGRESS env vars
//   - Config file settings
//   - Default values
//
// CMDBATCH_CONFIG points at an alternative settings file.
//
// # Key Settings
//
//   - directory: output directory for .cmd/.out/.err files (default: "results")
//   - shell: shell used to run expanded commands (default: "sh")
//   - progress: "auto", "always" or "never" (default: "auto", shown only
//     when stderr is a terminal)
//
// Example:
//
//	directory = "~/batch-results"
//	shell = "bash"
//	progress = "never"
package config
