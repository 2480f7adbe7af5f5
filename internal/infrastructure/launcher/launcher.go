// Package launcher opens browser windows at a given geometry.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/bnema/splitview/internal/application/port"
)

// Backend names a window creation strategy.
type Backend string

const (
	BackendExec     Backend = "exec"
	BackendHyprland Backend = "hyprland"
	BackendDryRun   Backend = "dry-run"
)

var (
	// ErrNoBrowser is returned when no browser executable is configured.
	ErrNoBrowser = errors.New("no browser configured")
	// ErrNotExecutable is returned when the browser cannot be run.
	ErrNotExecutable = errors.New("not an executable")
)

// ProcessStarter starts name with args detached from the caller and returns its pid.
type ProcessStarter func(name string, args []string) (int, error)

// Options configures New.
type Options struct {
	Backend Backend
	Browser string
	Args    []string
	// Starter and Runner replace host process creation in tests.
	Starter ProcessStarter
	Runner  CommandRunner
}

// New returns the window manager selected by opts.Backend.
func New(opts Options) (port.WindowManager, error) {
	switch opts.Backend {
	case BackendDryRun:
		return NewRecorder(), nil
	case BackendHyprland:
		if strings.TrimSpace(opts.Browser) == "" {
			return nil, ErrNoBrowser
		}
		return NewHyprlandLauncher(opts.Browser, opts.Args, opts.Runner), nil
	case BackendExec, "":
		if strings.TrimSpace(opts.Browser) == "" {
			return nil, ErrNoBrowser
		}
		return NewExecLauncher(opts.Browser, opts.Args, opts.Starter), nil
	default:
		return nil, fmt.Errorf("unknown launcher backend %q", opts.Backend)
	}
}

// StartDetached starts a process in its own process group so it outlives
// splitview. The child is reaped in the background.
func StartDetached(name string, args []string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	go func() { _ = cmd.Wait() }()
	return cmd.Process.Pid, nil
}

// ResolveExecutable finds name on PATH and verifies it can be executed.
func ResolveExecutable(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if err := unix.Access(path, unix.X_OK); err != nil {
		return "", fmt.Errorf("%s: %w: %w", path, ErrNotExecutable, err)
	}
	return path, nil
}

func positionArgs(extra []string, x, y, w, h int, url string) []string {
	args := make([]string, 0, len(extra)+4)
	args = append(args, extra...)
	return append(args,
		"--new-window",
		fmt.Sprintf("--window-position=%d,%d", x, y),
		fmt.Sprintf("--window-size=%d,%d", w, h),
		url,
	)
}
