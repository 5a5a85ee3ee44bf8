package cli

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/jlrickert/tjdate/pkg/tjdate"
)

// NewMCPCmd serves the timestamp tools over MCP on the runtime's stdin and
// stdout. The config file, when one was loaded, is watched and the engine
// rebuilt on change.
func NewMCPCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "serve the timestamp tool over MCP (stdio)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := deps.Runtime
			lg := rt.Logger()

			var wg sync.WaitGroup
			defer wg.Wait()
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			if deps.ConfigFile != "" {
				wg.Add(1)
				go func() {
					defer wg.Done()
					watchConfig(ctx, deps)
				}()
			}

			streams := toolkit.OrDefaultStream(rt.Stream())
			transport := &mcp.IOTransport{
				Reader: io.NopCloser(streams.In),
				Writer: nopWriteCloser{streams.Out},
			}
			server := tjdate.NewMCPServer(deps.Service, Version)
			lg.Debug("mcp server starting", "version", Version)
			return server.Run(ctx, transport)
		},
	}
}

// watchConfig reloads deps.Service on every change to deps.ConfigFile until
// ctx is done. A reload that fails keeps the current engine.
func watchConfig(ctx context.Context, deps *Deps) {
	rt := deps.Runtime
	lg := rt.Logger()
	err := tjdate.WatchConfig(ctx, rt, deps.ConfigFile, func(cfg *tjdate.Config, err error) {
		if err == nil {
			err = deps.Service.Reload(applyFlags(cfg, deps))
		}
		if err != nil {
			lg.Warn("config reload failed, keeping current engine", "path", deps.ConfigFile, "err", err)
			return
		}
		lg.Info("config reloaded", "path", deps.ConfigFile)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		lg.Warn("config watch stopped, changes will not be reloaded", "path", deps.ConfigFile, "err", err)
	}
}

// nopWriteCloser leaves the runtime's stdout open when the session closes.
type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
