// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Watch Gate - these keys govern the minimum-watch-time requirement that locks lesson resource links.
const (
	GateRequiredSeconds   = "gate.required_seconds"
	GateGraceDelaySeconds = "gate.grace_delay_seconds"
	GateFallbackAutostart = "gate.fallback_autostart"
)

// Catalog Sources - these keys manage the registration and selection of lesson catalogs.
const (
	CatalogDefault     = "catalog.default"
	CatalogPath        = "catalog.path"
	CatalogFetchTitles = "catalog.fetch_titles"
)

// Metadata Configuration - these keys govern the retrieval of lesson display metadata.
const (
	MetadataUseAPIKey = "metadata.use_api_key"
)

// Search Interaction - these keys define the UI/UX parameters for catalog search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the primary interactive environment's styling and logic.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
	TUIOpenOnUnlock       = "tui.open_on_unlock"
)

// Media Playback - these keys maintain the configuration for the embedded external player.
const (
	Player = "player.default"
)

// Network Behavior - these keys tune outbound HTTP behavior for metadata endpoints.
const (
	NetworkSpoofTLS = "network.spoof_tls"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
