package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// AppConfig is the report settings file. Section definitions are declared
// in code; the file only carries the run-wide knobs and delivery targets.
type AppConfig struct {
	Report   ReportConfig   `mapstructure:"report"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
}

type ReportConfig struct {
	Title             string `mapstructure:"title"`
	Type              string `mapstructure:"type"`
	Template          string `mapstructure:"template"`
	OutputMethod      string `mapstructure:"output_method"`
	OutputDir         string `mapstructure:"output_dir"`
	SkipSectionBreaks bool   `mapstructure:"skip_section_breaks"`
	PostProcess       bool   `mapstructure:"post_process"`
	VerticalThreshold int    `mapstructure:"vertical_threshold"`
}

type DeliveryConfig struct {
	Zip   bool       `mapstructure:"zip"`
	Excel bool       `mapstructure:"excel"`
	Mail  MailConfig `mapstructure:"mail"`
}

type MailConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Host    string   `mapstructure:"host"`
	Port    int      `mapstructure:"port"`
	From    string   `mapstructure:"from"`
	To      []string `mapstructure:"to"`
	Subject string   `mapstructure:"subject"`
}

func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("report.template", "DynamicGrid")
	v.SetDefault("report.output_method", string(domain.IndividualReport))
	v.SetDefault("report.output_dir", "reports")
	v.SetDefault("report.post_process", true)
	v.SetDefault("delivery.mail.port", 25)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse report config: %w", err)
	}
	return &cfg, nil
}

// Apply overlays the file settings onto a definition's built-in defaults.
// Empty file values leave the defaults alone, except for the boolean
// toggles which the file always decides.
func (c ReportConfig) Apply(s *domain.Settings) {
	if c.Title != "" {
		s.Title = c.Title
	}
	if c.Type != "" {
		s.ReportType = c.Type
	}
	if c.OutputMethod != "" {
		s.OutputMethod = domain.OutputMethod(c.OutputMethod)
	}
	if c.VerticalThreshold > 0 {
		s.VerticalThreshold = c.VerticalThreshold
	}
	s.SkipSectionBreaks = c.SkipSectionBreaks
	s.PostProcess = c.PostProcess
}
