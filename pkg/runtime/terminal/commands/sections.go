package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/reports/ltm"
)

// NewSectionsCmd lists the declared sections of the built-in definition in
// render order.
func NewSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the declared report sections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := ltm.Definition()
			for _, sec := range def.OrderedSections() {
				state := "enabled"
				if !sec.Enabled {
					state = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-20s %-6s %s (%s)\n",
					sec.Order, sec.ID, sec.Kind, sec.Title, state)
			}
			return nil
		},
	}
}
