// Package expand turns batch file sections into shell command lines.
//
// For a section foo with options msg=hello and n=2 and the template "echo",
// the expanded command is
//
//	echo "-msg hello -n 2 " > "results/foo.out" 2> "results/foo.err"
//
// The option block and the redirect targets are quoted so that whitespace in
// section names or values survives the shell. The template comes from the
// section's own "command" option when present (that option is never passed
// as a flag), otherwise from [DEFAULT].
//
// # Errors
//
// An option with an empty name or value is fatal ([MissingOptionValueError])
// and stops expansion before that section's .cmd file is written. Requested
// section names that don't exist only produce warnings.
package expand
