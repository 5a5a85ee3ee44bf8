package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/spf13/cobra"

	"github.com/jlrickert/tjdate/pkg/datefmt"
)

func runFormat(cmd *cobra.Command, args []string, deps *Deps) error {
	out := cmd.OutOrStdout()
	engine := deps.Service.Engine()

	format := args[0]
	if format == datefmt.DefaultKeyword {
		format = ""
		fmt.Fprintf(out, "using default format: %s\n", engine.DefaultTemplate())
	}

	if deps.Verbose {
		if err := traceFormat(cmd.ErrOrStderr(), args, format, deps); err != nil {
			return err
		}
	}

	s, err := engine.GetTimestamp(deps.Date, &datefmt.Options{Format: format, Debug: deps.Verbose})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

// traceFormat writes the flag values, positionals and compiled plan.
func traceFormat(w io.Writer, args []string, format string, deps *Deps) error {
	key := color.New(color.FgCyan, color.Bold)
	val := color.New(color.FgYellow)
	if isTTY(deps) {
		key.EnableColor()
		val.EnableColor()
	} else {
		key.DisableColor()
		val.DisableColor()
	}

	line := func(k, layout string, a ...any) {
		key.Fprintf(w, "%-13s", k+":")
		val.Fprintf(w, layout, a...)
		fmt.Fprintln(w)
	}

	line("values", "verbose=%t date=%q strict=%t config=%q",
		deps.Verbose, deps.Date, deps.Strict, deps.ConfigFile)
	line("positionals", "%q", args)

	f, err := deps.Service.Engine().GetDateFormatter(format)
	if err != nil {
		return err
	}
	line("template", "%s", f.Template())
	line("plan", "%s", f.Plan())
	return nil
}

func isTTY(deps *Deps) bool {
	return deps.Runtime != nil && toolkit.OrDefaultStream(deps.Runtime.Stream()).IsTTY
}

func printUsage(w io.Writer, reason string, deps *Deps) {
	def := datefmt.DefaultTemplate
	if deps != nil && deps.Service != nil {
		def = deps.Service.Engine().DefaultTemplate()
	}
	if reason != "" {
		fmt.Fprintf(w, "Usage: %s\n", reason)
	}
	fmt.Fprintf(w, `
usage
    tjdate format
    tjdate placeholders
    tjdate mcp

    -v|--verbose     verbose mode
    -d|--date DATE   format DATE instead of now
    --strict         reject unknown variables
    -c|--config FILE config file (default $XDG_CONFIG_HOME/tjdate/config.yaml)
    format           date format, such as '${yyyy}-${mm}-${dd} ${HH}:${MM}:${SS}'
                     'default' = %s
                     available variables: %s
example:
    - use default
    tjdate default

    - for bash, use single quote
    tjdate '${yyyy}-${mm}-${dd} ${HH}:${MM}:${SS}'

    - for windows batch, use double quote
    tjdate "${yyyy}-${mm}-${dd} ${HH}:${MM}:${SS}"

`, def, strings.Join(datefmt.AvailablePlaceholders, ", "))
}
