package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jlrickert/cli-toolkit/toolkit"
)

// Run executes the tjdate command line against rt and returns the process
// exit status. Streams, env, filesystem, clock and logger all come from rt.
func Run(ctx context.Context, rt *toolkit.Runtime, args []string) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if rt == nil {
		var err error
		if rt, err = toolkit.NewOsRuntime(); err != nil {
			return 1, err
		}
	}
	streams := toolkit.OrDefaultStream(rt.Stream())

	deps := &Deps{Runtime: rt}
	defer func() {
		if deps.Shutdown != nil {
			deps.Shutdown()
		}
	}()

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		if !errors.Is(err, ErrUsage) {
			fmt.Fprintf(streams.Err, "Error: %s\n", renderUserError(err, deps))
		}
		return 1, err
	}
	return 0, nil
}
