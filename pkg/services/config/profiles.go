package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/de-tools/fleet-report/pkg/models/domain"
)

// Registry resolves device connection profiles from an ini-style
// credentials file, one section per device.
type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.DeviceProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading profiles from %s: %w", path, err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (*domain.DeviceProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	profile := &domain.DeviceProfile{
		Name:       name,
		Host:       section.Key("host").String(),
		Username:   section.Key("username").String(),
		Password:   section.Key("password").String(),
		SkipVerify: section.Key("skip_verify").MustBool(false),
	}
	if profile.Host == "" {
		return nil, fmt.Errorf("profile %s: missing host", name)
	}
	return profile, nil
}
