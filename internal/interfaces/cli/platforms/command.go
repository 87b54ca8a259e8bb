// Package platforms lists the supported social platforms.
package platforms

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/orris-inc/socialdash/internal/domain/platform"
)

func NewCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List supported platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, platform.Default(), verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show scope descriptions")

	return cmd
}

func list(cmd *cobra.Command, registry *platform.Registry, verbose bool) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCOPES")
	for _, p := range registry.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.ID, p.DisplayName, strings.Join(p.Scopes, ","))
		if verbose {
			for _, s := range p.Scopes {
				fmt.Fprintf(w, "\t  %s\t%s\n", s, p.DescribeScope(s))
			}
		}
	}
	return w.Flush()
}
