package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// Panics are reported as general errors instead of crashing with a trace.
func runMain(ctx context.Context, args []string, env *Environment) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(env.Stderr, "internal error: %v\n", r)
			code = ExitGeneral
		}
	}()

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case "build":
		err = runBuild(ctx, rest, env)
	case "inspect":
		err = runInspect(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "md2site %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}
