package models

// APIInfo describes the public API of the host. It is served by /api/info and
// printed at startup.
type APIInfo struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	License     string `json:"license,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
	// SecurityScheme names how protected endpoints expect credentials.
	SecurityScheme string `json:"security_scheme"`
}
