package configure

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCfgContent = `base:
  app_type: vm
  git_url: https://example/repo.git
  git_dir: base1
  git_branch: main
  vm_image:
    select: false
    base_image: centos7
  use_custom_image_file: false
apps:
  - app_name: myapp
    title: My App
    name: myapp
    cpu:
      value: 2
    memory:
      value: 4096
      select: true
      min: 1024
      max: 8192
  - app_name: second
    title: Second App
    name: second
    cpu:
      value: 4
    memory:
      value: 2048
    use_custom_image_file: true
    vm_image:
      select: true
`

func writeCfg(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "apps.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func TestGetAppsCfg(t *testing.T) {
	cfg, err := GetAppsCfg(writeCfg(t, validCfgContent))
	require.NoError(t, err)
	require.NotNil(t, cfg.Base)
	require.Len(t, cfg.Apps, 2)

	assert.Equal(t, "vm", cfg.Base.AppType)
	assert.Equal(t, "https://example/repo.git", cfg.Base.GitURL)
	assert.Equal(t, "base1", cfg.Base.GitDir)
	assert.Equal(t, "main", cfg.Base.GitBranch)
	require.NotNil(t, cfg.Base.VMImage)
	assert.False(t, cfg.Base.VMImage.Select)
	assert.Equal(t, "centos7", cfg.Base.VMImage.BaseImage)
	assert.False(t, cfg.Base.UseCustomImageFile)

	first := cfg.Apps[0]
	assert.Equal(t, "myapp", first.AppName)
	assert.Equal(t, "My App", first.Title)
	assert.Equal(t, "myapp", first.Name)
	require.NotNil(t, first.CPU)
	assert.Equal(t, 2, first.CPU.Value)
	assert.False(t, first.CPU.Select)
	require.NotNil(t, first.Memory)
	assert.Equal(t, 4096, first.Memory.Value)
	assert.True(t, first.Memory.Select)
	assert.Equal(t, 1024, first.Memory.Min)
	assert.Equal(t, 8192, first.Memory.Max)
	// No overrides.
	assert.Nil(t, first.VMImage)
	assert.Nil(t, first.UseCustomImageFile)

	second := cfg.Apps[1]
	require.NotNil(t, second.UseCustomImageFile)
	assert.True(t, *second.UseCustomImageFile)
	require.NotNil(t, second.VMImage)
	assert.True(t, second.VMImage.Select)
	assert.Nil(t, second.VMImage.BaseImage)
}

func TestGetAppsCfgMissingFile(t *testing.T) {
	_, err := GetAppsCfg(filepath.Join(t.TempDir(), "apps.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get access to configuration file")
}

func TestGetAppsCfgMissingBaseKeys(t *testing.T) {
	baseKeys := map[string]string{
		"app_type":              "app_type: vm",
		"git_url":               "git_url: https://example/repo.git",
		"git_dir":               "git_dir: base1",
		"git_branch":            "git_branch: main",
		"vm_image":              "vm_image: {select: false, base_image: centos7}",
		"use_custom_image_file": "use_custom_image_file: false",
	}

	for missing := range baseKeys {
		baseSection := "base:\n"
		for key, line := range baseKeys {
			if key != missing {
				baseSection += "  " + line + "\n"
			}
		}
		content := baseSection + `apps:
  - app_name: myapp
    title: My App
    name: myapp
    cpu: {value: 2}
    memory: {value: 4096}
`
		_, err := GetAppsCfg(writeCfg(t, content))
		require.Error(t, err, "expected error for missing %s", missing)
		assert.Contains(t, err.Error(),
			fmt.Sprintf("base is missing required attribute: %s", missing))
	}
}

func TestGetAppsCfgMissingAppKeys(t *testing.T) {
	appKeys := map[string]string{
		"app_name": "app_name: myapp",
		"title":    "title: My App",
		"name":     "name: myapp",
		"cpu":      "cpu: {value: 2}",
		"memory":   "memory: {value: 4096}",
	}

	for missing := range appKeys {
		content := `base:
  app_type: vm
  git_url: https://example/repo.git
  git_dir: base1
  git_branch: main
  vm_image: {select: false, base_image: centos7}
  use_custom_image_file: false
apps:
  -`
		first := true
		for key, line := range appKeys {
			if key != missing {
				if first {
					content += " " + line + "\n"
					first = false
				} else {
					content += "    " + line + "\n"
				}
			}
		}
		_, err := GetAppsCfg(writeCfg(t, content))
		require.Error(t, err, "expected error for missing %s", missing)
		assert.Contains(t, err.Error(),
			fmt.Sprintf("app 0 is missing required attribute: %s", missing))
	}
}

func TestGetAppsCfgMissingSections(t *testing.T) {
	_, err := GetAppsCfg(writeCfg(t, "apps: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required section: base")

	_, err = GetAppsCfg(writeCfg(t, `base:
  app_type: vm
  git_url: u
  git_dir: d
  git_branch: b
  vm_image: {}
  use_custom_image_file: false
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required section: apps")
}

func TestRootDir(t *testing.T) {
	tmpDir := t.TempDir()

	// Explicit root flag wins.
	rootDir, err := RootDir(tmpDir, filepath.Join("etc", "apps.yaml"))
	require.NoError(t, err)
	assert.Equal(t, tmpDir, rootDir)

	// Default is the config file directory.
	rootDir, err = RootDir("", filepath.Join(tmpDir, "apps.yaml"))
	require.NoError(t, err)
	assert.Equal(t, tmpDir, rootDir)
}
