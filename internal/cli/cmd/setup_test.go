package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitview/internal/application/port"
	"github.com/bnema/splitview/internal/infrastructure/desktop"
)

func useTestDesktop(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "applications")
	adapter := desktop.NewWithDir(dir, func() (string, error) { return "/opt/splitview", nil })

	prev := newDesktop
	newDesktop = func() port.DesktopIntegration { return adapter }
	t.Cleanup(func() { newDesktop = prev })
	return filepath.Join(dir, "splitview.desktop")
}

func TestSetupCommands(t *testing.T) {
	setTestApp(t)
	path := useTestDesktop(t)

	c, out := newTestCommand(nil)
	require.NoError(t, runSetupStatus(c, nil))
	assert.Contains(t, out.String(), "not installed")
	assert.Contains(t, out.String(), "/opt/splitview")

	out.Reset()
	require.NoError(t, runSetupInstall(c, nil))
	assert.Contains(t, out.String(), "installed to")
	assert.Contains(t, out.String(), path)

	out.Reset()
	require.NoError(t, runSetupInstall(c, nil))
	assert.Contains(t, out.String(), "updated at")

	out.Reset()
	require.NoError(t, runSetupRemove(c, nil))
	assert.Contains(t, out.String(), "Removed")

	out.Reset()
	require.NoError(t, runSetupRemove(c, nil))
	assert.Contains(t, out.String(), "was not installed")
}

func TestSetupSkipsDatabase(t *testing.T) {
	assert.True(t, skipsDatabase(setupInstallCmd))
}
