// Package static is an in-memory collector for demos and tests.
package static

import (
	"context"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

type Collector struct {
	devices []domain.Device
	data    map[string]map[string][]*domain.Record
}

func New() *Collector {
	return &Collector{data: make(map[string]map[string][]*domain.Record)}
}

// Add registers records for one device and section, creating the device on
// first use.
func (c *Collector) Add(device, sectionID string, records ...*domain.Record) *Collector {
	if _, ok := c.data[device]; !ok {
		c.devices = append(c.devices, domain.Device{Name: device})
		c.data[device] = make(map[string][]*domain.Record)
	}
	c.data[device][sectionID] = append(c.data[device][sectionID], records...)
	return c
}

func (c *Collector) Devices(_ context.Context) ([]domain.Device, error) {
	out := make([]domain.Device, len(c.devices))
	copy(out, c.devices)
	return out, nil
}

// Collect returns the registered records. Unknown sections yield no
// records, which renders as an empty section, not an error.
func (c *Collector) Collect(_ context.Context, sectionID string, device domain.Device) ([]*domain.Record, error) {
	bySection, ok := c.data[device.Name]
	if !ok {
		return nil, nil
	}
	return bySection[sectionID], nil
}
