package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"

	"github.com/jlrickert/tjdate/pkg/cli"
)

func main() {
	ctx := context.Background()

	rt, err := toolkit.NewRuntime(
		toolkit.WithRuntimeLogger(mylog.NewLogger(mylog.LoggerConfig{
			Out:     os.Stderr,
			Level:   slog.LevelWarn,
			Version: cli.Version,
		})),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code, _ := cli.Run(ctx, rt, os.Args[1:])
	os.Exit(code)
}
