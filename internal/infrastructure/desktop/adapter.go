// Package desktop installs the splitview launcher entry for Linux desktops (XDG).
package desktop

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/logging"
)

const (
	appName         = "splitview"
	desktopFileName = "splitview.desktop"
	filePerm        = 0644
	dirPerm         = 0755
)

// desktopFileTemplate is the freedesktop.org desktop entry format.
// Both placeholders receive the executable path.
const desktopFileTemplate = `[Desktop Entry]
Version=1.1
Type=Application
Name=splitview
GenericName=Split View Launcher
Comment=Open two pages side by side
Exec=%s pick
Icon=view-split-left-right
Terminal=true
Categories=Network;Utility;
Actions=restore;

[Desktop Action restore]
Name=Restore last split
Exec=%s restore
`

// Adapter implements port.DesktopIntegration by writing a desktop file.
type Adapter struct {
	appsDir         string
	updateDesktopDB string
	executable      func() (string, error)
}

// New creates an adapter targeting $XDG_DATA_HOME/applications.
func New() *Adapter {
	a := NewWithDir(filepath.Join(xdg.DataHome, "applications"), executablePath)

	// Optional, refreshes the menu cache on some desktops
	if path, err := exec.LookPath("update-desktop-database"); err == nil {
		a.updateDesktopDB = path
	}
	return a
}

// NewWithDir creates an adapter writing into appsDir.
func NewWithDir(appsDir string, executable func() (string, error)) *Adapter {
	return &Adapter{appsDir: appsDir, executable: executable}
}

var _ port.DesktopIntegration = (*Adapter)(nil)

// executablePath returns the path of the running splitview binary.
func executablePath() (string, error) {
	execPath, err := os.Executable()
	if err == nil {
		if resolved, symlinkErr := filepath.EvalSymlinks(execPath); symlinkErr == nil {
			execPath = resolved
		}
		return execPath, nil
	}

	path, err := exec.LookPath(appName)
	if err != nil {
		return "", fmt.Errorf("cannot find %s executable: %w", appName, err)
	}
	return path, nil
}

func (a *Adapter) desktopPath() string {
	return filepath.Join(a.appsDir, desktopFileName)
}

// Status reports whether the desktop entry exists.
func (a *Adapter) Status(ctx context.Context) (*port.DesktopEntryStatus, error) {
	status := &port.DesktopEntryStatus{Path: a.desktopPath()}

	_, err := os.Stat(status.Path)
	switch {
	case err == nil:
		status.Installed = true
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("stat desktop file: %w", err)
	}

	if execPath, execErr := a.executable(); execErr == nil {
		status.ExecutablePath = execPath
	}

	logging.FromContext(ctx).Debug().
		Bool("installed", status.Installed).
		Str("path", status.Path).
		Str("exec_path", status.ExecutablePath).
		Msg("desktop entry status")

	return status, nil
}

// Install writes the desktop entry and returns its path.
func (a *Adapter) Install(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	execPath, err := a.executable()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(a.appsDir, dirPerm); err != nil {
		return "", fmt.Errorf("create applications dir: %w", err)
	}

	path := a.desktopPath()
	content := fmt.Sprintf(desktopFileTemplate, execPath, execPath)
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return "", fmt.Errorf("write desktop file: %w", err)
	}
	log.Info().Str("path", path).Msg("desktop file installed")

	a.refresh(ctx)
	return path, nil
}

// Remove deletes the desktop entry. A missing entry is not an error.
func (a *Adapter) Remove(ctx context.Context) error {
	log := logging.FromContext(ctx)
	path := a.desktopPath()

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", path).Msg("desktop file not found (already removed)")
			return nil
		}
		return fmt.Errorf("remove desktop file: %w", err)
	}
	log.Info().Str("path", path).Msg("desktop file removed")

	a.refresh(ctx)
	return nil
}

func (a *Adapter) refresh(ctx context.Context) {
	if a.updateDesktopDB == "" {
		return
	}
	if err := exec.CommandContext(ctx, a.updateDesktopDB, a.appsDir).Run(); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("update-desktop-database failed (non-fatal)")
	}
}
