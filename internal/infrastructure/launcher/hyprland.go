package launcher

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync/atomic"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// CommandRunner runs name with args and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return out, nil
}

// HyprlandLauncher asks Hyprland to spawn the browser with floating window
// rules, so geometry holds even under a tiling layout.
type HyprlandLauncher struct {
	browser string
	args    []string
	run     CommandRunner
	seq     atomic.Uint64
}

// NewHyprlandLauncher creates a launcher dispatching through hyprctl.
func NewHyprlandLauncher(browser string, args []string, run CommandRunner) *HyprlandLauncher {
	if run == nil {
		run = execRunner
	}
	return &HyprlandLauncher{
		browser: browser,
		args:    append([]string(nil), args...),
		run:     run,
	}
}

// CreateWindow implements port.WindowManager.
func (l *HyprlandLauncher) CreateWindow(ctx context.Context, url string, rect entity.Rect, focused bool) (entity.WindowHandle, error) {
	command := dispatchCommand(l.browser, l.args, url, rect, focused)
	out, err := l.run(ctx, "hyprctl", "dispatch", "exec", command)
	if err != nil {
		return entity.WindowHandle{}, fmt.Errorf("hyprctl dispatch: %w", err)
	}
	if reply := strings.TrimSpace(string(out)); reply != "" && reply != "ok" {
		return entity.WindowHandle{}, fmt.Errorf("hyprctl dispatch: %s", reply)
	}

	id := fmt.Sprintf("hyprland:%d", l.seq.Add(1))
	logging.FromContext(ctx).Debug().
		Str("handle", id).
		Str("rect", rect.String()).
		Bool("focused", focused).
		Msg("hyprland window dispatched")

	return entity.WindowHandle{ID: id}, nil
}

// Name implements port.HealthChecker.
func (l *HyprlandLauncher) Name() string { return "launcher:hyprland" }

// Check implements port.HealthChecker.
func (l *HyprlandLauncher) Check(context.Context) error {
	if _, err := ResolveExecutable("hyprctl"); err != nil {
		return err
	}
	_, err := ResolveExecutable(l.browser)
	return err
}

func dispatchCommand(browser string, extra []string, url string, rect entity.Rect, focused bool) string {
	rules := []string{
		"float",
		fmt.Sprintf("move %d %d", rect.Left, rect.Top),
		fmt.Sprintf("size %d %d", rect.Width, rect.Height),
	}
	if !focused {
		rules = append(rules, "noinitialfocus")
	}

	parts := []string{shellQuote(browser)}
	for _, arg := range positionArgs(extra, rect.Left, rect.Top, rect.Width, rect.Height, url) {
		parts = append(parts, shellQuote(arg))
	}
	return "[" + strings.Join(rules, ";") + "] " + strings.Join(parts, " ")
}

// shellQuote wraps s in single quotes when it contains anything a shell
// would interpret.
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
			strings.ContainsRune("-_./:=,@%+", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
