// Package collect defines the data-collection boundary feeding section
// data into a report definition before rendering begins.
package collect

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// Collector supplies the devices to report on and the records for one
// section of one device. Implementations may be slow and fallible; any
// retry policy belongs to them, not to the engine.
type Collector interface {
	Devices(ctx context.Context) ([]domain.Device, error)
	Collect(ctx context.Context, sectionID string, device domain.Device) ([]*domain.Record, error)
}

// Populate fills AllData for every enabled data section of every device
// and returns the subject identifiers to iterate. A collection failure on
// one device is logged as a warning and skips that device only; a failure
// listing devices is fatal since nothing can proceed without it.
func Populate(ctx context.Context, def *domain.ReportDefinition, c Collector) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	devices, err := c.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect: listing devices: %w", err)
	}

	var subjects []string
	for _, dev := range devices {
		ok := true
		for _, sec := range def.OrderedSections() {
			if !sec.Enabled || sec.Kind != domain.DataSection {
				continue
			}
			if sec.Spec(def.Settings.ReportType) == nil {
				continue
			}
			records, err := c.Collect(ctx, sec.ID, dev)
			if err != nil {
				logger.Warn().
					Err(err).
					Str("device", dev.Name).
					Str("section", sec.ID).
					Msg("data collection failed, skipping device")
				ok = false
				break
			}
			sec.SetData(dev.Name, records)
		}
		if ok {
			subjects = append(subjects, dev.Name)
		}
	}
	return subjects, nil
}
