// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Behaviour - these keys govern where and how episodes are fetched.
const (
	DownloadOutputDir = "download.output_dir"
	DownloadChunks    = "download.chunks"
)

// Network - these keys tune the shared HTTP client.
const (
	NetworkTimeout = "network.timeout"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored = "cli.colored"
)
