package init

import (
	// Go embed blank import.
	_ "embed"
	"fmt"
	"os"

	"github.com/apex/log"
)

// InitCtx contains information for apps config creation.
type InitCtx struct {
	// ConfigName is a name of the config file to create.
	ConfigName string
	// ForceMode, if set, the config is re-written without a question.
	ForceMode bool
}

//go:embed apps.yaml
var defaultAppsCfgBytes []byte

// Run creates a starter apps configuration file in the current directory.
func Run(initCtx *InitCtx) error {
	if _, err := os.Stat(initCtx.ConfigName); err == nil && !initCtx.ForceMode {
		return fmt.Errorf("%s already exists, use --force to overwrite", initCtx.ConfigName)
	}

	if err := os.WriteFile(initCtx.ConfigName, defaultAppsCfgBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %s", initCtx.ConfigName, err)
	}

	log.Infof("Created configuration file: %s", initCtx.ConfigName)
	return nil
}
