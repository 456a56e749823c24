package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/reports/ltm"
	"github.com/de-tools/fleet-report/pkg/services/config"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

type ValidateCmd struct {
	configPath string
}

// NewValidateCmd checks the settings file against the built-in definition
// without rendering anything.
func NewValidateCmd() *cobra.Command {
	vc := &ValidateCmd{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the report settings and section definitions",
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.configPath, "config", "fleet-report.yaml", "Path to the report settings file")

	return cmd
}

func (vc *ValidateCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(vc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load report settings: %w", err)
	}

	def := ltm.Definition()
	cfg.Report.Apply(&def.Settings)

	if err := def.Validate(); err != nil {
		return err
	}
	if _, err := markup.For(markup.Family(cfg.Report.Template)); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "configuration is valid")
	return nil
}
