package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/reports/ltm"
	"github.com/de-tools/fleet-report/pkg/runtime/terminal/summary"
	"github.com/de-tools/fleet-report/pkg/services/collect"
	"github.com/de-tools/fleet-report/pkg/services/collect/bigip"
	"github.com/de-tools/fleet-report/pkg/services/config"
	"github.com/de-tools/fleet-report/pkg/services/delivery"
	"github.com/de-tools/fleet-report/pkg/services/report"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

type GenerateCmd struct {
	configPath   string
	profilesPath string
	demo         bool
	reporter     *summary.Reporter
}

func NewGenerateCmd(reporter *summary.Reporter) *cobra.Command {
	gc := &GenerateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Collect fleet data and generate the configured reports",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.configPath, "config", "fleet-report.yaml", "Path to the report settings file")
	cmd.Flags().StringVar(&gc.profilesPath, "profiles", "", "Path to the device profiles file")
	cmd.Flags().BoolVar(&gc.demo, "demo", false, "Render the built-in demo fleet instead of collecting")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadConfig(gc.configPath)
	if err != nil {
		return fmt.Errorf("failed to load report settings: %w", err)
	}

	def := ltm.Definition()
	cfg.Report.Apply(&def.Settings)

	collector, err := gc.collector()
	if err != nil {
		return err
	}

	svc, err := report.NewService(def, collector, markup.Family(cfg.Report.Template))
	if err != nil {
		return err
	}

	result, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("report run failed: %w", err)
	}

	// Delivery failures are warnings: a broken mail relay must not cost
	// the already-rendered reports.
	files, err := delivery.WriteFiles(cfg.Report.OutputDir, result)
	if err != nil {
		logger.Warn().Err(err).Msg("writing reports failed")
	}

	if cfg.Delivery.Zip && len(files) > 0 {
		zipPath := filepath.Join(cfg.Report.OutputDir, "reports.zip")
		if err := delivery.Zip(zipPath, files); err != nil {
			logger.Warn().Err(err).Msg("zipping reports failed")
		} else {
			files = append(files, zipPath)
		}
	}

	if cfg.Delivery.Excel {
		xlsxPath := filepath.Join(cfg.Report.OutputDir, "report.xlsx")
		if err := delivery.WriteWorkbook(xlsxPath, result.Subjects, svc.ExportTables); err != nil {
			logger.Warn().Err(err).Msg("spreadsheet export failed")
		} else {
			files = append(files, xlsxPath)
		}
	}

	if cfg.Delivery.Mail.Enabled {
		gc.mail(logger, cfg.Delivery.Mail, result.Combined, result.PerSubject)
	}

	return gc.reporter.Handle(&summary.RunSummary{
		Title:      def.Settings.Title,
		ReportType: def.Settings.ReportType,
		Subjects:   result.Subjects,
		Failed:     result.Failed,
		Files:      files,
	})
}

func (gc *GenerateCmd) mail(logger zerolog.Logger, cfg config.MailConfig, combined string, perSubject map[string]string) {
	if combined != "" {
		if err := delivery.Mail(cfg, combined); err != nil {
			logger.Warn().Err(err).Msg("mailing combined report failed")
		}
		return
	}
	for subject, doc := range perSubject {
		if err := delivery.Mail(cfg, doc); err != nil {
			logger.Warn().Err(err).Str("subject", subject).Msg("mailing report failed")
		}
	}
}

func (gc *GenerateCmd) collector() (collect.Collector, error) {
	if gc.demo {
		return ltm.DemoCollector(), nil
	}
	if gc.profilesPath == "" {
		return nil, fmt.Errorf("either --profiles or --demo is required")
	}
	registry, err := config.NewRegistry(gc.profilesPath)
	if err != nil {
		return nil, err
	}
	return bigip.New(registry, ltm.Endpoints()), nil
}
