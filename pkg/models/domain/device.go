package domain

// Device is one managed subject a report is produced for.
type Device struct {
	Name string
}

// DeviceProfile holds the connection settings for one device, loaded from
// the profile registry.
type DeviceProfile struct {
	Name     string
	Host     string
	Username string
	Password string
	// SkipVerify disables TLS certificate verification for appliances
	// with self-signed management certificates.
	SkipVerify bool
}
