// Package config loads, validates and watches the splitview configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/splitview/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a configuration manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerForDir(configDir)
}

// NewManagerForDir creates a configuration manager reading config.toml from dir.
func NewManagerForDir(dir string) (*Manager, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// SPLITVIEW_LAYOUT_MODE, SPLITVIEW_LAUNCHER_BROWSER, ...
	v.SetEnvPrefix("SPLITVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"logging.level":    "SPLITVIEW_LOG_LEVEL",
		"logging.format":   "SPLITVIEW_LOG_FORMAT",
		"launcher.browser": "SPLITVIEW_BROWSER",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		configDir: dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration file, creating it with defaults when missing,
// then applies environment overrides, normalization and validation.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = m.configFilePath()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// normalizeConfig replaces unknown enum values with their defaults.
func normalizeConfig(config *Config) {
	config.Layout.Mode = entity.ParseSplitMode(config.Layout.Mode).String()

	switch ScreenBackend(strings.ToLower(string(config.Screen.Backend))) {
	case ScreenBackendHyprland:
		config.Screen.Backend = ScreenBackendHyprland
	case ScreenBackendSway:
		config.Screen.Backend = ScreenBackendSway
	case ScreenBackendStatic:
		config.Screen.Backend = ScreenBackendStatic
	default:
		config.Screen.Backend = ScreenBackendAuto
	}
	if config.Screen.TimeoutMs <= 0 {
		config.Screen.TimeoutMs = defaultScreenTimeoutMs
	}

	switch LauncherBackend(strings.ToLower(string(config.Launcher.Backend))) {
	case LauncherBackendHyprland:
		config.Launcher.Backend = LauncherBackendHyprland
	case LauncherBackendDryRun, "dryrun", "dry_run":
		config.Launcher.Backend = LauncherBackendDryRun
	default:
		config.Launcher.Backend = LauncherBackendExec
	}
	config.Launcher.Browser = strings.TrimSpace(config.Launcher.Browser)
	if len(config.Launcher.Args) == 0 {
		config.Launcher.Args = nil
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Launcher.Args = append([]string(nil), m.config.Launcher.Args...)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFilePath()); err != nil {
		return err
	}

	if m.watching {
		m.skipNextReload = true
		configCopy := *cfg
		m.config = &configCopy
		return nil
	}
	_, err := m.reload()
	return err
}

// GetConfigFile returns the path of the configuration file.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFilePath()
}

func (m *Manager) configFilePath() string {
	return filepath.Join(m.configDir, configFileName)
}

func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := m.configFilePath()
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(filepath.Join(m.configDir, schemaFileName)); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults registers every default value with viper so environment
// overrides work for keys absent from the file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("layout.mode", defaults.Layout.Mode)
	m.viper.SetDefault("layout.edge_to_edge", defaults.Layout.EdgeToEdge)
	m.viper.SetDefault("layout.gap", defaults.Layout.Gap)
	m.viper.SetDefault("layout.inset_gap", defaults.Layout.InsetGap)
	m.viper.SetDefault("layout.margin", defaults.Layout.Margin)

	m.viper.SetDefault("screen.backend", string(defaults.Screen.Backend))
	m.viper.SetDefault("screen.width", defaults.Screen.Width)
	m.viper.SetDefault("screen.height", defaults.Screen.Height)
	m.viper.SetDefault("screen.left", defaults.Screen.Left)
	m.viper.SetDefault("screen.top", defaults.Screen.Top)
	m.viper.SetDefault("screen.timeout_ms", defaults.Screen.TimeoutMs)

	m.viper.SetDefault("launcher.backend", string(defaults.Launcher.Backend))
	m.viper.SetDefault("launcher.browser", defaults.Launcher.Browser)
	m.viper.SetDefault("launcher.args", defaults.Launcher.Args)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	palette := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", palette.Background)
	m.viper.SetDefault("appearance.palette.surface", palette.Surface)
	m.viper.SetDefault("appearance.palette.text", palette.Text)
	m.viper.SetDefault("appearance.palette.muted", palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", palette.Accent)
	m.viper.SetDefault("appearance.palette.border", palette.Border)

	m.viper.SetDefault("popup.autosave_delay_ms", defaults.Popup.AutosaveDelayMs)

	m.viper.SetDefault("session.max_age_days", defaults.Session.MaxAgeDays)
	m.viper.SetDefault("session.auto_cleanup", defaults.Session.AutoCleanup)
}
