package launcher

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/logging"
)

// ExecLauncher starts one Chromium-family process per window and passes the
// geometry as command-line flags. The browser decides focus itself.
type ExecLauncher struct {
	browser string
	args    []string
	start   ProcessStarter
}

// NewExecLauncher creates a launcher for browser. A nil start uses StartDetached.
func NewExecLauncher(browser string, args []string, start ProcessStarter) *ExecLauncher {
	if start == nil {
		start = StartDetached
	}
	return &ExecLauncher{
		browser: browser,
		args:    append([]string(nil), args...),
		start:   start,
	}
}

// CreateWindow implements port.WindowManager.
func (l *ExecLauncher) CreateWindow(ctx context.Context, url string, rect entity.Rect, focused bool) (entity.WindowHandle, error) {
	if err := ctx.Err(); err != nil {
		return entity.WindowHandle{}, err
	}

	args := positionArgs(l.args, rect.Left, rect.Top, rect.Width, rect.Height, url)
	pid, err := l.start(l.browser, args)
	if err != nil {
		return entity.WindowHandle{}, fmt.Errorf("start %s: %w", l.browser, err)
	}

	logging.FromContext(ctx).Debug().
		Str("browser", l.browser).
		Str("rect", rect.String()).
		Bool("focused", focused).
		Int("pid", pid).
		Msg("browser window started")

	return entity.WindowHandle{ID: fmt.Sprintf("pid:%d", pid), PID: pid}, nil
}

// Name implements port.HealthChecker.
func (l *ExecLauncher) Name() string { return "launcher:" + l.browser }

// Check implements port.HealthChecker.
func (l *ExecLauncher) Check(context.Context) error {
	_, err := ResolveExecutable(l.browser)
	return err
}
