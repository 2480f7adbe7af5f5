package config

import (
	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/domain/layout"
)

const (
	defaultBrowser         = "chromium"
	defaultScreenTimeoutMs = 2000
	defaultAutosaveDelayMs = 1000
	defaultSessionMaxAge   = 7
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			Mode:       entity.DefaultSplitMode.String(),
			EdgeToEdge: true,
			Gap:        layout.DefaultEdgeToEdgeGap,
			InsetGap:   layout.DefaultInsetGap,
			Margin:     layout.DefaultInsetMargin,
		},
		Screen: ScreenConfig{
			Backend:   ScreenBackendAuto,
			TimeoutMs: defaultScreenTimeoutMs,
		},
		Launcher: LauncherConfig{
			Backend: LauncherBackendExec,
			Browser: defaultBrowser,
			Args:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Appearance: AppearanceConfig{
			Palette: ColorPalette{
				Background: "#1e1e2e",
				Surface:    "#313244",
				Text:       "#cdd6f4",
				Muted:      "#7f849c",
				Accent:     "#89b4fa",
				Border:     "#45475a",
			},
		},
		Popup: PopupConfig{
			AutosaveDelayMs: defaultAutosaveDelayMs,
		},
		Session: SessionConfig{
			MaxAgeDays:  defaultSessionMaxAge,
			AutoCleanup: true,
		},
	}
}
