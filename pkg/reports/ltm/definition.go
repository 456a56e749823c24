// Package ltm declares the built-in report definition for a BIG-IP LTM
// fleet: which sections exist, how each renders per report type, and
// which colorizer chains run afterwards.
package ltm

import (
	"fmt"

	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/collect/bigip"
	"github.com/de-tools/fleet-report/pkg/services/report/colorize"
)

// Report type names recognized by this definition.
const (
	FullDocumentation = "FullDocumentation"
	ExcelExport       = "ExcelExport"
)

func availabilityChain() []domain.ColorRule {
	return []domain.ColorRule{
		{
			Kind:      domain.RuleByValue,
			Column:    "Availability",
			Value:     "red",
			Attr:      "class",
			AttrValue: "alert",
			WholeRow:  true,
		},
		{
			Kind:      domain.RuleByValue,
			Column:    "Availability",
			Value:     "green",
			Attr:      "class",
			AttrValue: "ok",
		},
		{
			Kind:      domain.RuleByOddRows,
			Attr:      "class",
			AttrValue: "stripe",
			WholeRow:  true,
		},
	}
}

// Definition builds the LTM fleet report. Section data is filled in by a
// collector before assembly.
func Definition() *domain.ReportDefinition {
	return &domain.ReportDefinition{
		Settings: domain.Settings{
			Title:        "BIG-IP LTM Fleet Documentation",
			ReportType:   FullDocumentation,
			ReportTypes:  []string{FullDocumentation, ExcelExport},
			PostProcess:  true,
			OutputMethod: domain.IndividualReport,
		},
		Sections: []*domain.SectionDefinition{
			{
				ID:      "ltm-overview",
				Title:   "Local Traffic",
				Order:   10,
				Enabled: true,
				Kind:    domain.SectionBreak,
			},
			{
				ID:      "device-info",
				Title:   "Device Information",
				Order:   20,
				Enabled: true,
				Kind:    domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					// Twelve columns, so Auto resolves to Vertical.
					FullDocumentation: {
						Width:       domain.WidthFull,
						Orientation: domain.Auto,
						Columns: []domain.Projection{
							domain.Field("Hostname", "hostname"),
							domain.Field("Version", "version"),
							domain.Field("Build", "build"),
							domain.Field("Platform", "platform"),
							domain.Field("Serial", "serial"),
							domain.Field("HA State", "haState"),
							domain.Field("Sync Status", "syncStatus"),
							domain.Field("Failover Peer", "failoverPeer"),
							domain.Field("Uptime", "uptime"),
							domain.Field("CPU", "cpu"),
							domain.Field("Memory", "memory"),
							domain.Field("NTP Servers", "ntpServers"),
						},
					},
				},
			},
			{
				ID:      "virtual-servers",
				Title:   "Virtual Servers",
				Order:   30,
				Enabled: true,
				Kind:    domain.DataSection,
				Comment: "Availability as reported by the associated monitors.",
				Specs: map[string]*domain.RenderSpec{
					FullDocumentation: {
						Width:       domain.WidthHalf,
						Orientation: domain.Horizontal,
						Columns:     virtualServerColumns(),
						PostProcess: availabilityChain(),
					},
					ExcelExport: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     virtualServerColumns(),
					},
				},
			},
			{
				ID:      "pools",
				Title:   "Pools",
				Order:   40,
				Enabled: true,
				Kind:    domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					FullDocumentation: {
						Width:       domain.WidthHalf,
						Orientation: domain.Horizontal,
						Columns:     poolColumns(),
						PostProcess: availabilityChain(),
					},
					ExcelExport: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     poolColumns(),
					},
				},
			},
			{
				ID:        "pool-members",
				Title:     "Pool Members",
				Order:     50,
				Enabled:   true,
				ShowEmpty: true,
				Kind:      domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					FullDocumentation: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     poolMemberColumns(),
						PostProcess: []domain.ColorRule{
							{
								Kind:      domain.RuleByValue,
								Column:    "State",
								Value:     "down",
								Attr:      "class",
								AttrValue: "alert",
								WholeRow:  true,
							},
						},
					},
					ExcelExport: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     poolMemberColumns(),
					},
				},
			},
			{
				ID:      "certificates",
				Title:   "SSL Certificates",
				Order:   60,
				Enabled: true,
				Kind:    domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					FullDocumentation: {
						Width:       domain.WidthTwoThirds,
						Orientation: domain.Horizontal,
						Columns:     certificateColumns(),
						PostProcess: []domain.ColorRule{
							{
								Kind:      domain.RuleByValue,
								Column:    "Days Left",
								Value:     "30",
								Predicate: colorize.LessThan,
								Attr:      "class",
								AttrValue: "warn",
							},
						},
					},
					ExcelExport: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Columns:     certificateColumns(),
					},
				},
			},
			{
				ID:      "monitors",
				Title:   "Health Monitors",
				Order:   70,
				Enabled: true,
				Kind:    domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					FullDocumentation: {
						Width:       domain.WidthThird,
						Orientation: domain.Horizontal,
						Columns: []domain.Projection{
							domain.Field("Monitor", "name"),
							domain.Field("Type", "type"),
							domain.Field("Interval", "interval"),
						},
					},
				},
			},
			{
				ID:        "notes",
				Title:     "Operator Notes",
				Order:     80,
				Enabled:   true,
				ShowEmpty: true,
				Kind:      domain.DataSection,
				Specs: map[string]*domain.RenderSpec{
					// Rendered in place, outside the grouping flow.
					FullDocumentation: {
						Width:       domain.WidthFull,
						Orientation: domain.Horizontal,
						Override:    true,
						Columns: []domain.Projection{
							domain.Field("Note", "note"),
						},
					},
				},
			},
		},
	}
}

func virtualServerColumns() []domain.Projection {
	return []domain.Projection{
		domain.Field("Name", "name"),
		domain.Field("Destination", "destination"),
		domain.Field("Pool", "pool"),
		domain.Field("Availability", "availability"),
		domain.Field("State", "state"),
	}
}

func poolColumns() []domain.Projection {
	return []domain.Projection{
		domain.Field("Name", "name"),
		domain.Field("Availability", "availability"),
		domain.Field("Monitor", "monitor"),
		{
			Label: "Active Members",
			Extract: func(r *domain.Record) string {
				return fmt.Sprintf("%s / %s", r.String("activeMemberCnt"), r.String("memberCnt"))
			},
		},
	}
}

func poolMemberColumns() []domain.Projection {
	return []domain.Projection{
		domain.Field("Pool", "poolName"),
		domain.Field("Member", "name"),
		domain.Field("Address", "address"),
		domain.Field("Port", "port"),
		domain.Field("State", "state"),
	}
}

func certificateColumns() []domain.Projection {
	return []domain.Projection{
		domain.Field("Certificate", "name"),
		domain.Field("Issuer", "issuer"),
		domain.Field("Expires", "expirationString"),
		domain.Field("Days Left", "daysLeft"),
	}
}

// Endpoints maps each data section to its iControl REST collection.
func Endpoints() map[string]bigip.Endpoint {
	return map[string]bigip.Endpoint{
		"device-info": {
			Path: "/mgmt/tm/cm/device",
			Fields: []string{
				"hostname", "version", "build", "platform", "serial",
				"haState", "syncStatus", "failoverPeer", "uptime",
				"cpu", "memory", "ntpServers",
			},
		},
		"virtual-servers": {
			Path:   "/mgmt/tm/ltm/virtual",
			Fields: []string{"name", "destination", "pool", "availability", "state"},
		},
		"pools": {
			Path:   "/mgmt/tm/ltm/pool",
			Fields: []string{"name", "availability", "monitor", "activeMemberCnt", "memberCnt"},
		},
		"pool-members": {
			Path:   "/mgmt/tm/ltm/pool/members",
			Fields: []string{"poolName", "name", "address", "port", "state"},
		},
		"certificates": {
			Path:   "/mgmt/tm/sys/file/ssl-cert",
			Fields: []string{"name", "issuer", "expirationString", "daysLeft"},
		},
		"monitors": {
			Path:   "/mgmt/tm/ltm/monitor/http",
			Fields: []string{"name", "type", "interval"},
		},
	}
}
