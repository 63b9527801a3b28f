// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Source Page - the page whose embedded player is resolved.
const (
	SourceURL    = "source.url"
	SourcePrefix = "source.prefix"
)

// HTTP Server - listener parameters for the serve command.
const (
	ServerHost = "server.host"
	ServerPort = "server.port"
)

// Resolver - these keys configure how a source page is turned into an embedded player URL.
const (
	ResolverEngine            = "resolver.engine"
	ResolverMarker            = "resolver.marker"
	ResolverLaunchTimeout     = "resolver.launch_timeout"
	ResolverNavigationTimeout = "resolver.navigation_timeout"
	ResolverBrowserBin        = "resolver.browser_bin"
)

// Resolution Cache - these keys govern the on-disk cache of resolved players.
const (
	CacheTTL       = "cache.ttl"
	CacheOnCorrupt = "cache.on_corrupt"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite  = "logs.write"
	LogsLevel  = "logs.level"
	LogsJson   = "logs.json"
	LogsStderr = "logs.stderr"
)

// CLI Execution Environment - these flags and settings govern the terminal behavior.
const (
	CliColored = "cli.colored"
)
