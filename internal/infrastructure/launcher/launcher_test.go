package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/domain/entity"
)

var testRect = entity.Rect{Width: 959, Height: 1040, Left: 961, Top: 0}

func TestExecLauncher_CreateWindow(t *testing.T) {
	var gotName string
	var gotArgs []string
	start := func(name string, args []string) (int, error) {
		gotName, gotArgs = name, args
		return 4242, nil
	}

	l := NewExecLauncher("chromium", []string{"--profile-directory=Work"}, start)
	handle, err := l.CreateWindow(context.Background(), "https://example.com", testRect, false)
	require.NoError(t, err)

	assert.Equal(t, entity.WindowHandle{ID: "pid:4242", PID: 4242}, handle)
	assert.Equal(t, "chromium", gotName)
	assert.Equal(t, []string{
		"--profile-directory=Work",
		"--new-window",
		"--window-position=961,0",
		"--window-size=959,1040",
		"https://example.com",
	}, gotArgs)
}

func TestExecLauncher_StartFailure(t *testing.T) {
	boom := errors.New("exec: not found")
	l := NewExecLauncher("nope", nil, func(string, []string) (int, error) { return 0, boom })

	_, err := l.CreateWindow(context.Background(), "https://example.com", testRect, true)
	assert.ErrorIs(t, err, boom)
}

func TestExecLauncher_CancelledContext(t *testing.T) {
	started := false
	l := NewExecLauncher("chromium", nil, func(string, []string) (int, error) {
		started = true
		return 1, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.CreateWindow(ctx, "https://example.com", testRect, true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, started)
}

func TestHyprlandLauncher_CreateWindow(t *testing.T) {
	var got []string
	run := func(_ context.Context, name string, args ...string) ([]byte, error) {
		got = append([]string{name}, args...)
		return []byte("ok\n"), nil
	}

	l := NewHyprlandLauncher("brave", nil, run)
	first, err := l.CreateWindow(context.Background(), "https://example.com/?q=a&b=c", testRect, false)
	require.NoError(t, err)
	second, err := l.CreateWindow(context.Background(), "https://example.org", testRect, true)
	require.NoError(t, err)

	assert.Equal(t, "hyprland:1", first.ID)
	assert.Equal(t, "hyprland:2", second.ID)
	require.Len(t, got, 4)
	assert.Equal(t, []string{"hyprctl", "dispatch", "exec"}, got[:3])
	assert.Equal(t,
		"[float;move 961 0;size 959 1040] brave --new-window --window-position=961,0 --window-size=959,1040 https://example.org",
		got[3])
}

func TestHyprlandLauncher_Rejected(t *testing.T) {
	run := func(context.Context, string, ...string) ([]byte, error) {
		return []byte("Invalid dispatcher"), nil
	}

	_, err := NewHyprlandLauncher("brave", nil, run).CreateWindow(context.Background(), "https://a.b", testRect, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid dispatcher")
}

func TestDispatchCommand_Unfocused(t *testing.T) {
	cmd := dispatchCommand("chromium", []string{"--user-data-dir=/tmp/my profile"},
		"https://example.com/?q=it's", testRect, false)

	assert.Equal(t,
		`[float;move 961 0;size 959 1040;noinitialfocus] chromium '--user-data-dir=/tmp/my profile' --new-window `+
			`--window-position=961,0 --window-size=959,1040 'https://example.com/?q=it'\''s'`,
		cmd)
}

func TestShellQuote(t *testing.T) {
	tests := map[string]string{
		"chromium":              "chromium",
		"":                      "''",
		"a b":                   "'a b'",
		"https://x.y/?a=1&b=2":  "'https://x.y/?a=1&b=2'",
		"--window-size=100,200": "--window-size=100,200",
	}
	for in, want := range tests {
		assert.Equal(t, want, shellQuote(in), in)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	ctx := context.Background()

	h1, err := r.CreateWindow(ctx, "https://a.example", testRect, true)
	require.NoError(t, err)
	h2, err := r.CreateWindow(ctx, "https://b.example", testRect, false)
	require.NoError(t, err)

	assert.Equal(t, "dry-run:1", h1.ID)
	assert.Equal(t, "dry-run:2", h2.ID)

	reqs := r.Requests()
	require.Len(t, reqs, 2)
	assert.True(t, reqs[0].Focused)
	assert.False(t, reqs[1].Focused)
	assert.Equal(t, "https://b.example", reqs[1].URL)
	assert.NoError(t, r.Check(ctx))
}

func TestNew(t *testing.T) {
	wm, err := New(Options{Backend: BackendDryRun})
	require.NoError(t, err)
	assert.IsType(t, &Recorder{}, wm)

	wm, err = New(Options{Backend: BackendExec, Browser: "chromium"})
	require.NoError(t, err)
	assert.IsType(t, &ExecLauncher{}, wm)

	wm, err = New(Options{Backend: BackendHyprland, Browser: "chromium"})
	require.NoError(t, err)
	assert.IsType(t, &HyprlandLauncher{}, wm)

	_, err = New(Options{Backend: BackendExec})
	assert.ErrorIs(t, err, ErrNoBrowser)

	_, err = New(Options{Backend: "x11", Browser: "chromium"})
	assert.Error(t, err)
}

func TestResolveExecutable(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fake-browser")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0o755))
	plain := filepath.Join(dir, "plain-file")
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0o644))
	t.Setenv("PATH", dir)

	path, err := ResolveExecutable("fake-browser")
	require.NoError(t, err)
	assert.Equal(t, script, path)

	_, err = ResolveExecutable("plain-file")
	assert.Error(t, err)

	_, err = ResolveExecutable("missing-browser")
	assert.Error(t, err)

	assert.NoError(t, NewExecLauncher("fake-browser", nil, nil).Check(context.Background()))
}
