package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/oodtools/oodgen/cli/config"
	"github.com/oodtools/oodgen/cli/util"
)

const (
	// DefaultConfigName is the default name of the apps configuration file.
	DefaultConfigName = "apps.yaml"
	// AppsDirName is the name of the directory with generated apps under the root.
	AppsDirName = "apps"
)

// requiredBaseKeys are the keys every base section must provide.
var requiredBaseKeys = []string{
	"app_type", "git_url", "git_dir", "git_branch", "vm_image", "use_custom_image_file",
}

// requiredAppKeys are the keys every app entry must provide.
var requiredAppKeys = []string{
	"app_name", "title", "name", "cpu", "memory",
}

// rawKeys returns the string keys of a raw YAML mapping node.
// yaml.v2 produces map[interface{}]interface{} for nested mappings.
func rawKeys(node interface{}) (map[string]bool, error) {
	keys := make(map[string]bool)
	switch m := node.(type) {
	case map[string]interface{}:
		for k := range m {
			keys[k] = true
		}
	case map[interface{}]interface{}:
		for k := range m {
			keys[fmt.Sprintf("%v", k)] = true
		}
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", node)
	}
	return keys, nil
}

// validateRawCfg checks presence of the required keys in the raw parsed
// document. Only presence is checked: types and value ranges are not
// validated, malformed values surface later as renderer failures.
func validateRawCfg(raw map[string]interface{}) error {
	base, found := raw["base"]
	if !found {
		return fmt.Errorf("missing required section: base")
	}
	baseKeys, err := rawKeys(base)
	if err != nil {
		return fmt.Errorf("invalid base section: %s", err)
	}
	for _, key := range requiredBaseKeys {
		if !baseKeys[key] {
			return fmt.Errorf("base is missing required attribute: %s", key)
		}
	}

	apps, found := raw["apps"]
	if !found {
		return fmt.Errorf("missing required section: apps")
	}
	appList, ok := apps.([]interface{})
	if !ok {
		return fmt.Errorf("invalid apps section: expected a sequence, got %T", apps)
	}
	for i, app := range appList {
		appKeys, err := rawKeys(app)
		if err != nil {
			return fmt.Errorf("invalid app %d: %s", i, err)
		}
		for _, key := range requiredAppKeys {
			if !appKeys[key] {
				return fmt.Errorf("app %d is missing required attribute: %s", i, key)
			}
		}
	}

	return nil
}

// GetAppsCfg reads the apps configuration file located at configPath.
// The parsed document is returned unchanged: no defaults are filled in
// and no normalization is performed.
func GetAppsCfg(configPath string) (*config.AppsCfg, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to get access to configuration file: %s", err)
	}

	rawCfg, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse apps configuration: %s", err)
	}

	if err := validateRawCfg(rawCfg); err != nil {
		return nil, fmt.Errorf("invalid apps configuration: %s", err)
	}

	var cfg config.AppsCfg
	if err := mapstructure.Decode(rawCfg, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode apps configuration: %s", err)
	}

	return &cfg, nil
}

// RootDir returns the root directory for generated artifacts: rootFlag
// if provided, the configuration file directory otherwise.
func RootDir(rootFlag string, configPath string) (string, error) {
	if rootFlag != "" {
		return filepath.Abs(rootFlag)
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return "", fmt.Errorf("cannot determine configuration file directory: %s", err)
	}
	return configDir, nil
}
