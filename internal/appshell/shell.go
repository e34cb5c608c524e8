package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// ExitCancelled is the exit code after SIGINT/SIGTERM.
const ExitCancelled = 130

// Command is a motifmark entry point. argv excludes the program name; the
// report goes to stdout and logs to stderr.
type Command func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Args returns argv, or "-h" when it is empty so a bare invocation shows
// the usage text instead of a missing-input error.
func Args(argv []string) []string {
	if len(argv) == 0 {
		return []string{"-h"}
	}
	return argv
}

// ExitCode turns a run that was interrupted yet reported success into
// ExitCancelled. Explicit failures keep their own code.
func ExitCode(ctx context.Context, code int) int {
	if code == 0 && ctx.Err() != nil {
		return ExitCancelled
	}
	return code
}

// Main runs cmd on the process arguments and exits. SIGINT and SIGTERM
// cancel the context handed to cmd.
func Main(cmd Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := ExitCode(ctx, cmd(ctx, Args(os.Args[1:]), os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}
