package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/fleet-report/pkg/reports/ltm"
	"github.com/de-tools/fleet-report/pkg/server"
	"github.com/de-tools/fleet-report/pkg/services/collect"
	"github.com/de-tools/fleet-report/pkg/services/collect/bigip"
	"github.com/de-tools/fleet-report/pkg/services/config"
	"github.com/de-tools/fleet-report/pkg/services/report"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

var (
	cfgPath      string
	profilesPath string
	demo         bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve fleet reports over HTTP",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "fleet-report.yaml",
		"Path to the report settings file")
	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", "",
		"Path to the device profiles file")
	rootCmd.Flags().BoolVar(&demo, "demo", false,
		"Serve the built-in demo fleet instead of collecting")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load report settings: %w", err)
	}

	def := ltm.Definition()
	cfg.Report.Apply(&def.Settings)

	var collector collect.Collector
	if demo {
		collector = ltm.DemoCollector()
	} else {
		if profilesPath == "" {
			return fmt.Errorf("either --profiles or --demo is required")
		}
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create profile registry: %w", err)
		}
		collector = bigip.New(registry, ltm.Endpoints())
	}

	svc, err := report.NewService(def, collector, markup.Family(cfg.Report.Template))
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Report: svc,
		},
	})

	return api.Start()
}
