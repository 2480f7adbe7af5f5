package desktop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeExecutable() (string, error) {
	return "/usr/local/bin/splitview", nil
}

func TestAdapter_InstallWritesEntry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "applications")
	a := NewWithDir(dir, fakeExecutable)
	ctx := context.Background()

	path, err := a.Install(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "splitview.desktop"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Exec=/usr/local/bin/splitview pick\n")
	assert.Contains(t, content, "Exec=/usr/local/bin/splitview restore\n")
	assert.Contains(t, content, "Terminal=true")

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Installed)
	assert.Equal(t, path, status.Path)
	assert.Equal(t, "/usr/local/bin/splitview", status.ExecutablePath)
}

func TestAdapter_StatusNotInstalled(t *testing.T) {
	a := NewWithDir(t.TempDir(), fakeExecutable)

	status, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Installed)
}

func TestAdapter_RemoveIsIdempotent(t *testing.T) {
	a := NewWithDir(t.TempDir(), fakeExecutable)
	ctx := context.Background()

	path, err := a.Install(ctx)
	require.NoError(t, err)

	require.NoError(t, a.Remove(ctx))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, a.Remove(ctx))
}

func TestAdapter_InstallWithoutExecutable(t *testing.T) {
	dir := t.TempDir()
	a := NewWithDir(dir, func() (string, error) { return "", errors.New("not found") })

	_, err := a.Install(context.Background())
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "splitview.desktop"))
	assert.True(t, os.IsNotExist(statErr))
}
