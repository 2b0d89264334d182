package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oodtools/oodgen/cli/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAppContext(t *testing.T, appName string) (AppCtx, string) {
	t.Helper()
	rootDir := t.TempDir()
	appCtx := NewAppContext(
		&config.BaseOpts{},
		&config.AppOpts{AppName: appName},
		filepath.Join(rootDir, "base1"),
		filepath.Join(rootDir, "apps"),
	)
	return appCtx, rootDir
}

func TestCreateAppDirBasic(t *testing.T) {
	appCtx, rootDir := testAppContext(t, "app1")

	createAppDir := CreateAppDirectory{}
	require.NoError(t, createAppDir.Run(&appCtx))

	require.Equal(t, filepath.Join(rootDir, "apps", "app1"), appCtx.AppPath)
	require.DirExists(t, appCtx.AppPath)
	assert.False(t, appCtx.Skipped)
}

func TestCreateAppDirAlreadyExists(t *testing.T) {
	appCtx, rootDir := testAppContext(t, "app1")
	require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "apps", "app1"), 0755))

	createAppDir := CreateAppDirectory{}
	require.NoError(t, createAppDir.Run(&appCtx))
	assert.True(t, appCtx.Skipped)

	// The existing directory is left untouched.
	entries, err := os.ReadDir(appCtx.AppPath)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateAppDirExistingFileCountsAsCreated(t *testing.T) {
	// A leftover plain file named as the app gates generation too:
	// existence, not content, is the idempotence key.
	appCtx, rootDir := testAppContext(t, "app1")
	require.NoError(t, os.MkdirAll(filepath.Join(rootDir, "apps"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(rootDir, "apps", "app1"), []byte(""), 0644))

	createAppDir := CreateAppDirectory{}
	require.NoError(t, createAppDir.Run(&appCtx))
	assert.True(t, appCtx.Skipped)
}

func TestCreateAppDirMissingAppName(t *testing.T) {
	appCtx, _ := testAppContext(t, "")

	createAppDir := CreateAppDirectory{}
	require.EqualError(t, createAppDir.Run(&appCtx), "application name cannot be empty")
}
