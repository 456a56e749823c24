// Package bigip collects section data from F5 BIG-IP appliances over the
// iControl REST management API.
package bigip

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/config"
)

// Endpoint maps one section to a REST collection path. Fields fixes the
// record field order, since JSON object keys carry none.
type Endpoint struct {
	Path   string
	Fields []string
}

type Collector struct {
	registry  config.Registry
	endpoints map[string]Endpoint
	clients   map[string]*http.Client
}

func New(registry config.Registry, endpoints map[string]Endpoint) *Collector {
	return &Collector{
		registry:  registry,
		endpoints: endpoints,
		clients:   make(map[string]*http.Client),
	}
}

// Devices returns one device per registered profile.
func (c *Collector) Devices(ctx context.Context) ([]domain.Device, error) {
	profiles, err := c.registry.GetProfiles(ctx)
	if err != nil {
		return nil, err
	}
	devices := make([]domain.Device, 0, len(profiles))
	for _, name := range profiles {
		devices = append(devices, domain.Device{Name: name})
	}
	return devices, nil
}

// Collect fetches one section's records from one device. Sections without
// a registered endpoint collect nothing, which renders as an empty
// section.
func (c *Collector) Collect(ctx context.Context, sectionID string, device domain.Device) ([]*domain.Record, error) {
	ep, ok := c.endpoints[sectionID]
	if !ok {
		return nil, nil
	}

	profile, err := c.registry.GetProfile(ctx, device.Name)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s%s", profile.Host, ep.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bigip: building request for %s: %w", url, err)
	}
	req.SetBasicAuth(profile.Username, profile.Password)

	resp, err := c.client(profile).Do(req)
	if err != nil {
		return nil, fmt.Errorf("bigip: %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bigip: %s: unexpected status %d", url, resp.StatusCode)
	}

	var payload struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("bigip: decoding %s: %w", url, err)
	}

	records := make([]*domain.Record, 0, len(payload.Items))
	for _, item := range payload.Items {
		rec := domain.NewRecord()
		for _, field := range ep.Fields {
			rec.Set(field, item[field])
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Collector) client(profile *domain.DeviceProfile) *http.Client {
	if client, ok := c.clients[profile.Name]; ok {
		return client
	}
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: profile.SkipVerify},
		},
	}
	c.clients[profile.Name] = client
	return client
}
