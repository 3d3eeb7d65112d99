// Package cmd runs expanded batch commands through the shell.
//
// Commands are handed to "<shell> -c" as a single string, so the shell
// performs the quoting and the .out/.err redirections written into each
// command. Stderr of the shell itself is captured and used as the error
// message when the shell fails, making failures such as an unwritable
// output directory readable in verbose output.
//
// # Usage
//
//	err := cmd.RunShell(ctx, "sh", `echo "-msg hi " > "results/foo.out" 2> "results/foo.err"`)
//	if err != nil {
//	    code := cmd.ExitCode(err)
//	    ...
//	}
package cmd
