package ltm

import (
	"github.com/de-tools/fleet-report/pkg/models/domain"
	"github.com/de-tools/fleet-report/pkg/services/collect/static"
)

// DemoCollector returns an in-memory collector with a small two-device
// fleet, enough to exercise every section without an appliance.
func DemoCollector() *static.Collector {
	c := static.New()

	for _, dev := range []string{"bigip-fra-01", "bigip-fra-02"} {
		c.Add(dev, "device-info", domain.NewRecord().
			Set("hostname", dev+".example.net").
			Set("version", "15.1.8").
			Set("build", "0.0.7").
			Set("platform", "BIG-IP i4800").
			Set("serial", "f5-"+dev).
			Set("haState", "active").
			Set("syncStatus", "In Sync").
			Set("failoverPeer", "peer-"+dev).
			Set("uptime", "84 days").
			Set("cpu", "12%").
			Set("memory", "64%").
			Set("ntpServers", "10.0.0.10, 10.0.0.11"))

		c.Add(dev, "virtual-servers",
			domain.NewRecord().
				Set("name", "vs_www_https").
				Set("destination", "192.0.2.10:443").
				Set("pool", "pool_www").
				Set("availability", "green").
				Set("state", "enabled"),
			domain.NewRecord().
				Set("name", "vs_api_https").
				Set("destination", "192.0.2.11:443").
				Set("pool", "pool_api").
				Set("availability", "red").
				Set("state", "enabled"),
		)

		c.Add(dev, "pools",
			domain.NewRecord().
				Set("name", "pool_www").
				Set("availability", "green").
				Set("monitor", "http").
				Set("activeMemberCnt", 3).
				Set("memberCnt", 3),
			domain.NewRecord().
				Set("name", "pool_api").
				Set("availability", "red").
				Set("monitor", "https").
				Set("activeMemberCnt", 0).
				Set("memberCnt", 2),
		)

		c.Add(dev, "pool-members",
			domain.NewRecord().
				Set("poolName", "pool_www").
				Set("name", "web-01").
				Set("address", "10.10.0.1").
				Set("port", 8080).
				Set("state", "up"),
			domain.NewRecord().
				Set("poolName", "pool_api").
				Set("name", "api-01").
				Set("address", "10.10.1.1").
				Set("port", 8443).
				Set("state", "down"),
		)

		c.Add(dev, "certificates",
			domain.NewRecord().
				Set("name", "wildcard.example.net").
				Set("issuer", "DigiCert").
				Set("expirationString", "2026-11-02").
				Set("daysLeft", 70),
			domain.NewRecord().
				Set("name", "api.example.net").
				Set("issuer", "DigiCert").
				Set("expirationString", "2026-09-12").
				Set("daysLeft", 19),
		)

		c.Add(dev, "monitors",
			domain.NewRecord().
				Set("name", "http").
				Set("type", "http").
				Set("interval", 5),
			domain.NewRecord().
				Set("name", "https").
				Set("type", "https").
				Set("interval", 5),
		)

		c.Add(dev, "notes", domain.NewRecord().
			Set("note", "Maintenance window Sundays 02:00-04:00 UTC."))
	}

	return c
}
