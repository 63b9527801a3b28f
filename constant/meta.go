// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Framecast is the canonical application identifier used for filesystem paths and CLI branding.
	Framecast = "framecast"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used for requests to source pages.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Resolution defaults.
const (
	// ProviderMarker is the fragment an embedded player's src must contain to be picked up.
	ProviderMarker = "rutube"

	// SourcePrefix is the URL shape accepted as a source page by the HTTP layer.
	SourcePrefix = "https://yandex.ru/video/preview/"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
