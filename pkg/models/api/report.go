package api

// Device is the wire representation of one managed subject.
type Device struct {
	Name string `json:"name"`
}

// Section is the wire representation of one declared report section.
type Section struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Kind    string `json:"kind"`
	Order   int    `json:"order"`
	Enabled bool   `json:"enabled"`
}
