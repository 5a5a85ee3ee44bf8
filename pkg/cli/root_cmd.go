package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/jlrickert/cli-toolkit/mylog"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/jlrickert/tjdate/pkg/datefmt"
	"github.com/jlrickert/tjdate/pkg/internal"
	"github.com/jlrickert/tjdate/pkg/tjdate"
)

// Version is the build-time version. Override with:
//
//	-ldflags "-X github.com/jlrickert/tjdate/pkg/cli.Version=v1.2.3"
var Version = "dev"

// Deps carries the runtime, flag values and services shared by the commands.
type Deps struct {
	Runtime  *toolkit.Runtime
	Shutdown func()

	ConfigPath string
	LogFile    string
	LogLevel   string
	LogJSON    bool

	Verbose bool
	Date    string
	Strict  bool

	Config     *tjdate.Config
	ConfigFile string
	Service    *tjdate.Service
}

func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:   "tjdate <format|default>",
		Short: "print the current date and time using a ${name} template",
		Long: "tjdate renders a date with a template such as '${yyyy}-${mm}-${dd}'.\n" +
			"The word 'default' selects " + datefmt.DefaultTemplate + ".",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			rt := deps.Runtime
			if rt == nil {
				return fmt.Errorf("runtime is required")
			}

			// The runtime logger stays in place unless a log flag asks for
			// something else.
			if deps.LogFile != "" || deps.LogJSON || deps.LogLevel != "" {
				out := toolkit.OrDefaultStream(rt.Stream()).Err
				if deps.LogFile != "" {
					logPath, err := internal.HostPath(rt, deps.LogFile)
					if err != nil {
						return fmt.Errorf("resolve log file: %w", err)
					}
					rotated := &lumberjack.Logger{
						Filename:   logPath,
						MaxSize:    10,
						MaxBackups: 3,
						MaxAge:     28,
					}
					out = rotated
					deps.Shutdown = func() { _ = rotated.Close() }
				}
				level := deps.LogLevel
				if level == "" {
					level = "warn"
				}
				lg := mylog.NewLogger(mylog.LoggerConfig{
					Out:     out,
					Level:   mylog.ParseLevel(level),
					JSON:    deps.LogJSON,
					Version: Version,
				})
				if err := rt.SetLogger(lg); err != nil {
					return err
				}
			}

			cfg, path, err := tjdate.LoadConfig(rt, deps.ConfigPath)
			if err != nil {
				return err
			}
			deps.Config = applyFlags(cfg, deps)
			deps.ConfigFile = path

			svc, err := tjdate.NewService(deps.Config, rt.Logger(),
				datefmt.WithClock(datefmt.ClockFunc(rt.Clock().Now)))
			if err != nil {
				return err
			}
			deps.Service = svc
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				printUsage(cmd.OutOrStdout(), fmt.Sprintf("wrong number of positional arguments (%d)", len(args)), deps)
				return ErrUsage
			}
			return runFormat(cmd, args, deps)
		},
	}

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		if c != cmd {
			fmt.Fprint(c.OutOrStdout(), c.UsageString())
			return
		}
		printUsage(c.OutOrStdout(), "", deps)
	})

	cmd.PersistentFlags().StringVar(&deps.LogFile, "log-file", "", "write logs to file, rotated (default stderr)")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "", "minimum log level (default warn)")
	cmd.PersistentFlags().BoolVar(&deps.LogJSON, "log-json", false, "output logs as JSON")
	cmd.PersistentFlags().StringVarP(&deps.ConfigPath, "config", "c", "", "path to config file")
	cmd.PersistentFlags().BoolVar(&deps.Strict, "strict", false, "reject unknown ${name} variables")

	cmd.Flags().BoolVarP(&deps.Verbose, "verbose", "v", false, "verbose mode")
	cmd.Flags().StringVarP(&deps.Date, "date", "d", "", "format this date instead of now")

	cmd.AddCommand(
		NewPlaceholdersCmd(deps),
		NewMCPCmd(deps),
	)

	return cmd
}

// applyFlags returns a copy of cfg with command line and environment
// overrides applied.
func applyFlags(cfg *tjdate.Config, deps *Deps) *tjdate.Config {
	out := *cfg
	if deps.Strict {
		out.PlaceholderPolicy = string(datefmt.PolicyStrict)
	}
	if out.Timezone == "" && deps.Runtime != nil {
		out.Timezone = envTimezone(deps.Runtime)
	}
	return &out
}

// envTimezone returns the IANA zone named by TZ, or "" when TZ is unset or
// not a loadable zone name.
func envTimezone(env toolkit.Env) string {
	name := strings.TrimPrefix(strings.TrimSpace(env.Get("TZ")), ":")
	if name == "" || strings.EqualFold(name, "local") {
		return ""
	}
	if _, err := time.LoadLocation(name); err != nil {
		return ""
	}
	return name
}
