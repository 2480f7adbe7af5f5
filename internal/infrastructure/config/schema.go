package config

// Config represents the complete configuration for splitview.
type Config struct {
	// Layout controls the default geometry of a split.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Screen selects how the usable screen area is detected.
	Screen ScreenConfig `mapstructure:"screen" toml:"screen" json:"screen"`
	// Launcher selects how browser windows are opened.
	Launcher LauncherConfig `mapstructure:"launcher" toml:"launcher" json:"launcher"`
	// Database holds the location of the presets and settings store.
	Database DatabaseConfig `mapstructure:"database" toml:"database" json:"database"`
	// Logging controls log verbosity and output format.
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Appearance holds the colors of the interactive picker.
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	// Popup controls the interactive preset picker.
	Popup PopupConfig `mapstructure:"popup" toml:"popup" json:"popup"`
	// Session controls how recent splits are kept for restore.
	Session SessionConfig `mapstructure:"session" toml:"session" json:"session"`
}

// LayoutConfig holds the default split geometry.
type LayoutConfig struct {
	// Mode is the default split mode (side-by-side, top-bottom, focus).
	Mode string `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=side-by-side,enum=top-bottom,enum=focus"`
	// EdgeToEdge places windows flush against the screen edges.
	EdgeToEdge bool `mapstructure:"edge_to_edge" toml:"edge_to_edge" json:"edge_to_edge"`
	// Gap is the space between windows in edge-to-edge layouts.
	Gap int `mapstructure:"gap" toml:"gap" json:"gap" jsonschema:"minimum=0"`
	// InsetGap is the space between windows in inset layouts.
	InsetGap int `mapstructure:"inset_gap" toml:"inset_gap" json:"inset_gap" jsonschema:"minimum=0"`
	// Margin is the outer margin of inset layouts.
	Margin int `mapstructure:"margin" toml:"margin" json:"margin" jsonschema:"minimum=0"`
}

// ScreenBackend selects the screen detection strategy.
type ScreenBackend string

const (
	ScreenBackendAuto     ScreenBackend = "auto"
	ScreenBackendHyprland ScreenBackend = "hyprland"
	ScreenBackendSway     ScreenBackend = "sway"
	ScreenBackendStatic   ScreenBackend = "static"
)

// ScreenConfig controls screen detection.
type ScreenConfig struct {
	// Backend is auto, hyprland, sway or static.
	Backend ScreenBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=auto,enum=hyprland,enum=sway,enum=static"`
	// Width and Height describe the usable area for the static backend.
	// In auto mode they are used when no compositor answers.
	Width  int `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=0"`
	Height int `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=0"`
	// Left and Top are the origin of the static usable area.
	Left int `mapstructure:"left" toml:"left" json:"left" jsonschema:"minimum=0"`
	Top  int `mapstructure:"top" toml:"top" json:"top" jsonschema:"minimum=0"`
	// TimeoutMs bounds each compositor query.
	TimeoutMs int `mapstructure:"timeout_ms" toml:"timeout_ms" json:"timeout_ms" jsonschema:"minimum=1"`
}

// LauncherBackend selects the window creation strategy.
type LauncherBackend string

const (
	LauncherBackendExec     LauncherBackend = "exec"
	LauncherBackendHyprland LauncherBackend = "hyprland"
	LauncherBackendDryRun   LauncherBackend = "dry-run"
)

// LauncherConfig controls how browser windows are opened.
type LauncherConfig struct {
	// Backend is exec, hyprland or dry-run.
	Backend LauncherBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=exec,enum=hyprland,enum=dry-run"`
	// Browser is the Chromium-family executable name or path.
	Browser string `mapstructure:"browser" toml:"browser" json:"browser"`
	// Args are extra arguments passed before the window flags.
	Args []string `mapstructure:"args" toml:"args" json:"args"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path to the SQLite database. Empty means $XDG_DATA_HOME/splitview/splitview.db.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// AppearanceConfig holds the picker palette.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette holds hex colors used by the picker.
type ColorPalette struct {
	Background string `mapstructure:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" toml:"border" json:"border"`
}

// PopupConfig controls the interactive preset picker.
type PopupConfig struct {
	// AutosaveDelayMs is how long edits settle before they are saved.
	AutosaveDelayMs int `mapstructure:"autosave_delay_ms" toml:"autosave_delay_ms" json:"autosave_delay_ms" jsonschema:"minimum=0,maximum=10000"`
}

// SessionConfig controls recent split retention.
type SessionConfig struct {
	// MaxAgeDays is how long recorded splits are kept.
	MaxAgeDays int `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=1"`
	// AutoCleanup prunes old splits on every start.
	AutoCleanup bool `mapstructure:"auto_cleanup" toml:"auto_cleanup" json:"auto_cleanup"`
}
