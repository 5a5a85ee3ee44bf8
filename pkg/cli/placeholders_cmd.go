package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jlrickert/tjdate/pkg/datefmt"
)

// NewPlaceholdersCmd lists the template vocabulary.
func NewPlaceholdersCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "placeholders",
		Aliases: []string{"vars"},
		Short:   "list the ${name} variables a format may use",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range datefmt.AvailablePlaceholders {
				fmt.Fprintf(tw, "${%s}\t%s\n", name, datefmt.PlaceholderDescriptions[name])
			}
			fmt.Fprintf(tw, "\ndefault\t%s\n", deps.Service.Engine().DefaultTemplate())
			return tw.Flush()
		},
	}
}
