package config

import (
	"fmt"
	"strings"

	"github.com/bnema/splitview/internal/domain/validation"
)

const maxAutosaveDelayMs = 10000

// validateConfig collects every validation failure into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateScreen(config)...)
	validationErrors = append(validationErrors, validateLauncher(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validatePopup(config)...)
	validationErrors = append(validationErrors, validateSession(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	if config.Layout.Gap < 0 {
		validationErrors = append(validationErrors, "layout.gap must be non-negative")
	}
	if config.Layout.InsetGap < 0 {
		validationErrors = append(validationErrors, "layout.inset_gap must be non-negative")
	}
	if config.Layout.Margin < 0 {
		validationErrors = append(validationErrors, "layout.margin must be non-negative")
	}
	return validationErrors
}

func validateScreen(config *Config) []string {
	var validationErrors []string
	s := config.Screen
	if s.Width < 0 || s.Height < 0 {
		validationErrors = append(validationErrors, "screen.width and screen.height must be non-negative")
	}
	if s.Left < 0 || s.Top < 0 {
		validationErrors = append(validationErrors, "screen.left and screen.top must be non-negative")
	}
	if s.Backend == ScreenBackendStatic && (s.Width == 0 || s.Height == 0) {
		validationErrors = append(validationErrors, "screen.width and screen.height are required for the static backend")
	}
	return validationErrors
}

func validateLauncher(config *Config) []string {
	if config.Launcher.Backend != LauncherBackendDryRun && config.Launcher.Browser == "" {
		return []string{"launcher.browser cannot be empty"}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return validation.ValidatePaletteHex("appearance.palette", validation.Palette{
		Background: p.Background,
		Surface:    p.Surface,
		Text:       p.Text,
		Muted:      p.Muted,
		Accent:     p.Accent,
		Border:     p.Border,
	})
}

func validatePopup(config *Config) []string {
	if d := config.Popup.AutosaveDelayMs; d < 0 || d > maxAutosaveDelayMs {
		return []string{fmt.Sprintf("popup.autosave_delay_ms must be between 0 and %d", maxAutosaveDelayMs)}
	}
	return nil
}

func validateSession(config *Config) []string {
	if config.Session.MaxAgeDays < 1 {
		return []string{"session.max_age_days must be at least 1"}
	}
	return nil
}
