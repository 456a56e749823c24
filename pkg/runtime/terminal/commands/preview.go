package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/reports/ltm"
	"github.com/de-tools/fleet-report/pkg/runtime/terminal/tables"
	"github.com/de-tools/fleet-report/pkg/services/collect"
	"github.com/de-tools/fleet-report/pkg/services/collect/bigip"
	"github.com/de-tools/fleet-report/pkg/services/config"
	"github.com/de-tools/fleet-report/pkg/services/report"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

type PreviewCmd struct {
	configPath   string
	profilesPath string
	demo         bool
	device       string
}

// NewPreviewCmd prints one device's collected section data as text tables,
// skipping the HTML pipeline entirely.
func NewPreviewCmd() *cobra.Command {
	pc := &PreviewCmd{}
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print one device's section data as text tables",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.configPath, "config", "fleet-report.yaml", "Path to the report settings file")
	cmd.Flags().StringVar(&pc.profilesPath, "profiles", "", "Path to the device profiles file")
	cmd.Flags().BoolVar(&pc.demo, "demo", false, "Preview the built-in demo fleet instead of collecting")
	cmd.Flags().StringVar(&pc.device, "device", "", "Device to preview")
	_ = cmd.MarkFlagRequired("device")

	return cmd
}

func (pc *PreviewCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(pc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load report settings: %w", err)
	}

	def := ltm.Definition()
	cfg.Report.Apply(&def.Settings)

	collector, err := pc.collector()
	if err != nil {
		return err
	}

	svc, err := report.NewService(def, collector, markup.Family(cfg.Report.Template))
	if err != nil {
		return err
	}

	data, order, err := svc.DeviceTables(cmd.Context(), pc.device)
	if err != nil {
		return err
	}

	titles := make(map[string]string, len(def.Sections))
	for _, sec := range def.Sections {
		titles[sec.ID] = sec.Title
	}

	sections := make([]tables.SectionTable, 0, len(order))
	for _, id := range order {
		sections = append(sections, tables.SectionTable{Title: titles[id], Rows: data[id]})
	}
	return tables.NewReporter(cmd.OutOrStdout()).Handle(sections)
}

func (pc *PreviewCmd) collector() (collect.Collector, error) {
	if pc.demo {
		return ltm.DemoCollector(), nil
	}
	if pc.profilesPath == "" {
		return nil, fmt.Errorf("either --profiles or --demo is required")
	}
	registry, err := config.NewRegistry(pc.profilesPath)
	if err != nil {
		return nil, err
	}
	return bigip.New(registry, ltm.Endpoints()), nil
}
