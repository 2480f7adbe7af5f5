package port

import "context"

// DesktopEntryStatus reports the state of the launcher desktop entry.
type DesktopEntryStatus struct {
	Installed      bool
	Path           string
	ExecutablePath string
}

// DesktopIntegration installs a freedesktop.org entry that opens the preset
// picker from an application launcher.
type DesktopIntegration interface {
	// Status checks the current desktop entry.
	Status(ctx context.Context) (*DesktopEntryStatus, error)

	// Install writes the desktop entry and returns its path.
	// Idempotent: safe to call multiple times.
	Install(ctx context.Context) (string, error)

	// Remove deletes the desktop entry.
	// Idempotent: returns nil if the file doesn't exist.
	Remove(ctx context.Context) error
}
