package usecase

import (
	"context"
	"errors"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/logging"
)

// ErrExecutableNotFound means the entry would point at no binary.
var ErrExecutableNotFound = errors.New("splitview executable not found")

// InstallDesktopUseCase installs the launcher desktop entry.
type InstallDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewInstallDesktopUseCase creates a new InstallDesktopUseCase.
func NewInstallDesktopUseCase(desktop port.DesktopIntegration) *InstallDesktopUseCase {
	return &InstallDesktopUseCase{desktop: desktop}
}

// InstallDesktopOutput contains the result of the install operation.
type InstallDesktopOutput struct {
	Path        string
	WasExisting bool
}

// Execute writes the desktop entry, replacing an existing one.
func (uc *InstallDesktopUseCase) Execute(ctx context.Context) (*InstallDesktopOutput, error) {
	log := logging.FromContext(ctx)

	status, err := uc.desktop.Status(ctx)
	if err != nil {
		return nil, err
	}
	if status.ExecutablePath == "" {
		return nil, ErrExecutableNotFound
	}

	path, err := uc.desktop.Install(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Bool("was_existing", status.Installed).
		Msg("desktop entry installed")

	return &InstallDesktopOutput{Path: path, WasExisting: status.Installed}, nil
}

// RemoveDesktopUseCase removes the launcher desktop entry.
type RemoveDesktopUseCase struct {
	desktop port.DesktopIntegration
}

// NewRemoveDesktopUseCase creates a new RemoveDesktopUseCase.
func NewRemoveDesktopUseCase(desktop port.DesktopIntegration) *RemoveDesktopUseCase {
	return &RemoveDesktopUseCase{desktop: desktop}
}

// RemoveDesktopOutput contains the result of the remove operation.
type RemoveDesktopOutput struct {
	WasInstalled bool
	RemovedPath  string
}

// Execute removes the desktop entry if present.
func (uc *RemoveDesktopUseCase) Execute(ctx context.Context) (*RemoveDesktopOutput, error) {
	status, err := uc.desktop.Status(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.desktop.Remove(ctx); err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info().Bool("was_installed", status.Installed).Msg("desktop entry removed")

	out := &RemoveDesktopOutput{WasInstalled: status.Installed}
	if status.Installed {
		out.RemovedPath = status.Path
	}
	return out, nil
}
