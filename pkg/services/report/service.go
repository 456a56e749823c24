// Package report wires collection, assembly and export into the
// operations the CLI and web API call.
package report

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/collect"
	"github.com/de-tools/fleet-report/pkg/services/report/assemble"
	"github.com/de-tools/fleet-report/pkg/services/report/export"
	"github.com/de-tools/fleet-report/pkg/services/report/markup"
)

// Service owns one report definition and serializes access to it. Section
// data lives on the definition, so collection and rendering for different
// requests must not interleave.
type Service struct {
	mu        sync.Mutex
	def       *domain.ReportDefinition
	collector collect.Collector
	assembler *assemble.Assembler
}

func NewService(def *domain.ReportDefinition, collector collect.Collector, family markup.Family) (*Service, error) {
	assembler, err := assemble.New(def, family)
	if err != nil {
		return nil, err
	}
	return &Service{def: def, collector: collector, assembler: assembler}, nil
}

// Devices lists the subjects the collector can report on.
func (s *Service) Devices(ctx context.Context) ([]domain.Device, error) {
	return s.collector.Devices(ctx)
}

// Sections lists the declared sections in order.
func (s *Service) Sections() []*domain.SectionDefinition {
	return s.def.OrderedSections()
}

// DeviceReport collects and renders one device's full document.
func (s *Service) DeviceReport(ctx context.Context, name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.collectDevice(ctx, name); err != nil {
		return "", err
	}
	return s.assembler.Subject(name)
}

// DeviceTables collects one device and returns its section data as
// rectangular arrays, for terminal previews and ad-hoc exports.
func (s *Service) DeviceTables(ctx context.Context, name string) (map[string][][]string, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.collectDevice(ctx, name); err != nil {
		return nil, nil, err
	}
	tables, order := export.Tables(s.def, name)
	return tables, order, nil
}

func (s *Service) collectDevice(ctx context.Context, name string) error {
	device := domain.Device{Name: name}
	for _, sec := range s.def.OrderedSections() {
		if !sec.Enabled || sec.Kind != domain.DataSection {
			continue
		}
		if sec.Spec(s.def.Settings.ReportType) == nil {
			continue
		}
		records, err := s.collector.Collect(ctx, sec.ID, device)
		if err != nil {
			return fmt.Errorf("collecting %s for %s: %w", sec.ID, name, err)
		}
		sec.SetData(name, records)
	}
	return nil
}

// Run collects every device and assembles the configured output.
func (s *Service) Run(ctx context.Context) (*assemble.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := collect.Populate(ctx, s.def, s.collector)
	if err != nil {
		return nil, err
	}
	return s.assembler.Run(ctx, subjects)
}

// ExportTables returns one device's section data as rectangular arrays for
// the spreadsheet writer. The device must have been collected first.
func (s *Service) ExportTables(subject string) (map[string][][]string, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return export.Tables(s.def, subject)
}
