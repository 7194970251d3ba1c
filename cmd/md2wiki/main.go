package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(os.Args[1:], os.Stderr)))

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// maxprocsLogger reports the GOMAXPROCS adjustment to w under -v or
// --verbose, and discards it otherwise.
func maxprocsLogger(args []string, w io.Writer) func(string, ...any) {
	if slices.Contains(args, "-v") || slices.Contains(args, "--verbose") {
		return func(format string, a ...any) {
			fmt.Fprintf(w, format+"\n", a...)
		}
	}
	return func(string, ...any) {}
}
